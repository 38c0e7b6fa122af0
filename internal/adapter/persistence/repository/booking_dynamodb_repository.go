package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"tripmarket/internal/domain/entities"
	"tripmarket/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBookingsTableName = "bookings"
	defaultClaimsTableName   = "booking_claims"
	bookingsListingIDIndex   = "listing_id-index"
	bookingsIntentIDIndex    = "payment_intent_id-index"

	dayClaimPrefix    = "day#"
	intentClaimPrefix = "intent#"
)

type bookingItem struct {
	ID              string                 `dynamodbav:"id"`
	UserID          string                 `dynamodbav:"user_id"`
	ListingID       string                 `dynamodbav:"listing_id"`
	CheckIn         string                 `dynamodbav:"check_in"`
	CheckOut        string                 `dynamodbav:"check_out"`
	Guests          int                    `dynamodbav:"guests"`
	Price           string                 `dynamodbav:"price"`
	Extras          map[string]interface{} `dynamodbav:"extras,omitempty"`
	Status          string                 `dynamodbav:"status"`
	PaymentMethod   string                 `dynamodbav:"payment_method"`
	PaymentIntentID string                 `dynamodbav:"payment_intent_id,omitempty"`
	CreatedAt       string                 `dynamodbav:"created_at"`
	UpdatedAt       string                 `dynamodbav:"updated_at"`
}

type claimItem struct {
	ClaimID   string `dynamodbav:"claim_id"`
	BookingID string `dynamodbav:"booking_id"`
}

// BookingDynamoRepository persists Booking entities in DynamoDB.
//
// Table requirements:
//   - bookings: PK id (string), GSIs listing_id-index and
//     payment_intent_id-index
//   - booking_claims: PK claim_id (string)
//
// The claims table is the storage-level guard against double-booking and
// duplicate intent correlation: day claims are keyed day#<listing>#<date>,
// intent claims intent#<payment_intent_id>, and creation writes booking plus
// claims in one transaction with attribute_not_exists conditions.

type BookingDynamoRepository struct {
	ddb         *dynamodb.Client
	tableName   string
	claimsTable string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:         ddb,
		tableName:   getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
		claimsTable: getenvDefault("BOOKING_CLAIMS_TABLE", defaultClaimsTableName),
	}
}

func dayClaimID(listingID, day string) string {
	return dayClaimPrefix + listingID + "#" + day
}

func intentClaimID(intentID string) string {
	return intentClaimPrefix + intentID
}

func (r *BookingDynamoRepository) CreateWithClaims(ctx context.Context, b entities.Booking, claimDays []string) (entities.Booking, error) {
	av, err := attributevalue.MarshalMap(toBookingItem(b))
	if err != nil {
		return entities.Booking{}, err
	}

	items := []types.TransactWriteItem{{
		Put: &types.Put{
			TableName:                aws.String(r.tableName),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		},
	}}

	claimIDs := make([]string, 0, len(claimDays)+1)
	for _, day := range claimDays {
		claimIDs = append(claimIDs, dayClaimID(b.ListingID, day))
	}
	intentClaimIdx := -1
	if b.PaymentIntentID != "" {
		intentClaimIdx = len(claimIDs)
		claimIDs = append(claimIDs, intentClaimID(b.PaymentIntentID))
	}
	for _, claimID := range claimIDs {
		cav, err := attributevalue.MarshalMap(claimItem{ClaimID: claimID, BookingID: b.ID})
		if err != nil {
			return entities.Booking{}, err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName:                aws.String(r.claimsTable),
				Item:                     cav,
				ConditionExpression:      aws.String("attribute_not_exists(#cid)"),
				ExpressionAttributeNames: map[string]string{"#cid": "claim_id"},
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			// Reason order mirrors item order: booking, day claims, intent claim.
			for i, reason := range canceled.CancellationReasons {
				if reason.Code == nil || *reason.Code != "ConditionalCheckFailed" {
					continue
				}
				if i == 0 {
					// Booking id collision; nothing conflict-shaped to report.
					break
				}
				if intentClaimIdx >= 0 && i-1 == intentClaimIdx {
					return entities.Booking{}, interfaces.ErrIntentClaimConflict
				}
				return entities.Booking{}, interfaces.ErrDayClaimConflict
			}
		}
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) FindByPaymentIntentID(ctx context.Context, intentID string) (entities.Booking, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(bookingsIntentIDIndex),
		KeyConditionExpression: aws.String("payment_intent_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: intentID},
		},
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Items) == 0 {
		return entities.Booking{}, nil
	}
	// The intent claim makes duplicates impossible; any extra row here is a
	// data fault worth surfacing, not picking from.
	if len(out.Items) > 1 {
		return entities.Booking{}, errors.New("multiple bookings share payment_intent_id " + intentID)
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) ListAll(ctx context.Context) ([]entities.Booking, error) {
	bookings := make([]entities.Booking, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it bookingItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			bookings = append(bookings, fromBookingItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return bookings, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *BookingDynamoRepository) ListByListingID(ctx context.Context, listingID string) ([]entities.Booking, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(bookingsListingIDIndex),
		KeyConditionExpression: aws.String("listing_id = :lid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lid": &types.AttributeValueMemberS{Value: listingID},
		},
	})
	if err != nil {
		return nil, err
	}

	bookings := make([]entities.Booking, 0, len(out.Items))
	for _, raw := range out.Items {
		var it bookingItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		bookings = append(bookings, fromBookingItem(it))
	}
	return bookings, nil
}

func (r *BookingDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Booking{}, nil
		}
		return entities.Booking{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) UpdateStatusByPaymentIntentID(ctx context.Context, intentID string, status entities.BookingStatus) (entities.Booking, error) {
	b, err := r.FindByPaymentIntentID(ctx, intentID)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, nil
	}
	return r.UpdateStatusByID(ctx, b.ID, status)
}

func (r *BookingDynamoRepository) Override(ctx context.Context, id string, status *entities.BookingStatus, paymentMethod *entities.PaymentMethod, details *entities.BookingDetails) (entities.Booking, error) {
	expr := "SET #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
	}
	names := map[string]string{
		"#id":         "id",
		"#updated_at": "updated_at",
	}

	if status != nil {
		expr += ", #status = :status"
		vals[":status"] = &types.AttributeValueMemberS{Value: string(*status)}
		names["#status"] = "status"
	}
	if paymentMethod != nil {
		expr += ", #payment_method = :payment_method"
		vals[":payment_method"] = &types.AttributeValueMemberS{Value: string(*paymentMethod)}
		names["#payment_method"] = "payment_method"
	}
	if details != nil {
		expr += ", #check_in = :check_in, #check_out = :check_out, #guests = :guests, #price = :price"
		vals[":check_in"] = &types.AttributeValueMemberS{Value: details.CheckIn}
		vals[":check_out"] = &types.AttributeValueMemberS{Value: details.CheckOut}
		vals[":guests"] = &types.AttributeValueMemberN{Value: strconv.Itoa(details.Guests)}
		vals[":price"] = &types.AttributeValueMemberS{Value: floatToString(details.Price)}
		names["#check_in"] = "check_in"
		names["#check_out"] = "check_out"
		names["#guests"] = "guests"
		names["#price"] = "price"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Booking{}, nil
		}
		return entities.Booking{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// ReleaseClaims frees the booking's day and intent claims so the dates (and
// intent id) can be taken by another booking. Claims are only deleted when
// still owned by this booking; anything already re-claimed is left alone.
func (r *BookingDynamoRepository) ReleaseClaims(ctx context.Context, b entities.Booking) error {
	claimIDs := make([]string, 0, 8)
	if days, err := entities.DaysBetween(b.Details.CheckIn, b.Details.CheckOut); err == nil {
		for _, day := range days {
			claimIDs = append(claimIDs, dayClaimID(b.ListingID, day))
		}
	}
	if b.PaymentIntentID != "" {
		claimIDs = append(claimIDs, intentClaimID(b.PaymentIntentID))
	}

	for _, claimID := range claimIDs {
		_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.claimsTable),
			Key: map[string]types.AttributeValue{
				"claim_id": &types.AttributeValueMemberS{Value: claimID},
			},
			ConditionExpression: aws.String("booking_id = :bid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":bid": &types.AttributeValueMemberS{Value: b.ID},
			},
		})
		if err != nil {
			var cfe *types.ConditionalCheckFailedException
			if errors.As(err, &cfe) {
				continue
			}
			return err
		}
	}
	return nil
}

func toBookingItem(b entities.Booking) bookingItem {
	return bookingItem{
		ID:              b.ID,
		UserID:          b.UserID,
		ListingID:       b.ListingID,
		CheckIn:         b.Details.CheckIn,
		CheckOut:        b.Details.CheckOut,
		Guests:          b.Details.Guests,
		Price:           floatToString(b.Details.Price),
		Extras:          b.Details.Extras,
		Status:          string(b.Status),
		PaymentMethod:   string(b.PaymentMethod),
		PaymentIntentID: b.PaymentIntentID,
		CreatedAt:       b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBookingItem(it bookingItem) entities.Booking {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	price, _ := strconv.ParseFloat(it.Price, 64)
	return entities.Booking{
		ID:        it.ID,
		UserID:    it.UserID,
		ListingID: it.ListingID,
		Details: entities.BookingDetails{
			CheckIn:  it.CheckIn,
			CheckOut: it.CheckOut,
			Guests:   it.Guests,
			Price:    price,
			Extras:   it.Extras,
		},
		Status:          entities.BookingStatus(it.Status),
		PaymentMethod:   entities.PaymentMethod(it.PaymentMethod),
		PaymentIntentID: it.PaymentIntentID,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
