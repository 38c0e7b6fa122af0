package repository

import (
	"context"

	"tripmarket/internal/domain/entities"
	"tripmarket/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultUsersTableName    = "users"
	defaultListingsTableName = "listings"
	listingsVendorIDIndex    = "vendor_id-index"
)

type userItem struct {
	ID         string `dynamodbav:"id"`
	Email      string `dynamodbav:"email"`
	CustomerID string `dynamodbav:"customer_id,omitempty"`
}

type listingItem struct {
	ID       string `dynamodbav:"id"`
	VendorID string `dynamodbav:"vendor_id"`
	Title    string `dynamodbav:"title"`
}

// DirectoryDynamoRepository reads the users and listings tables owned by the
// marketplace's account and catalog services. Bookings only needs lookups and
// the vendor → listings resolution; all writes happen elsewhere.
//
// Table requirements:
//   - users: PK id (string)
//   - listings: PK id (string), GSI vendor_id-index (PK: vendor_id)

type DirectoryDynamoRepository struct {
	ddb           *dynamodb.Client
	usersTable    string
	listingsTable string
}

var _ interfaces.IDirectoryRepository = (*DirectoryDynamoRepository)(nil)

func NewDirectoryDynamoRepository(ddb *dynamodb.Client) *DirectoryDynamoRepository {
	return &DirectoryDynamoRepository{
		ddb:           ddb,
		usersTable:    getenvDefault("USERS_TABLE", defaultUsersTableName),
		listingsTable: getenvDefault("LISTINGS_TABLE", defaultListingsTableName),
	}
}

func (r *DirectoryDynamoRepository) GetUser(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.usersTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return entities.User{ID: it.ID, Email: it.Email, CustomerID: it.CustomerID}, nil
}

func (r *DirectoryDynamoRepository) GetListing(ctx context.Context, id string) (entities.Listing, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.listingsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Listing{}, err
	}
	if len(out.Item) == 0 {
		return entities.Listing{}, nil
	}

	var it listingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Listing{}, err
	}
	return entities.Listing{ID: it.ID, VendorID: it.VendorID, Title: it.Title}, nil
}

func (r *DirectoryDynamoRepository) ListListingIDsByVendor(ctx context.Context, vendorID string) ([]string, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.listingsTable),
		IndexName:              aws.String(listingsVendorIDIndex),
		KeyConditionExpression: aws.String("vendor_id = :vid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":vid": &types.AttributeValueMemberS{Value: vendorID},
		},
		ProjectionExpression:     aws.String("#id"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(out.Items))
	for _, raw := range out.Items {
		var it listingItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		ids = append(ids, it.ID)
	}
	return ids, nil
}
