package repository

import (
	"context"
	"time"

	"tripmarket/internal/domain/entities"
	"tripmarket/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBlockedRangesTableName = "blocked_ranges"
	blockedRangesListingIDIndex   = "listing_id-index"
)

type blockedRangeItem struct {
	ID        string `dynamodbav:"id"`
	ListingID string `dynamodbav:"listing_id"`
	StartDate string `dynamodbav:"start_date"`
	EndDate   string `dynamodbav:"end_date"`
	CreatedAt string `dynamodbav:"created_at"`
}

// BlockedRangeDynamoRepository persists BlockedDateRange entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: listing_id-index (PK: listing_id)

type BlockedRangeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBlockedRangeRepository = (*BlockedRangeDynamoRepository)(nil)

func NewBlockedRangeDynamoRepository(ddb *dynamodb.Client) *BlockedRangeDynamoRepository {
	return &BlockedRangeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BLOCKED_RANGES_TABLE", defaultBlockedRangesTableName),
	}
}

func (r *BlockedRangeDynamoRepository) Create(ctx context.Context, br entities.BlockedDateRange) (entities.BlockedDateRange, error) {
	av, err := attributevalue.MarshalMap(toBlockedRangeItem(br))
	if err != nil {
		return entities.BlockedDateRange{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.BlockedDateRange{}, err
	}
	return br, nil
}

func (r *BlockedRangeDynamoRepository) ListByListingID(ctx context.Context, listingID string) ([]entities.BlockedDateRange, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(blockedRangesListingIDIndex),
		KeyConditionExpression: aws.String("listing_id = :lid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lid": &types.AttributeValueMemberS{Value: listingID},
		},
	})
	if err != nil {
		return nil, err
	}

	ranges := make([]entities.BlockedDateRange, 0, len(out.Items))
	for _, raw := range out.Items {
		var it blockedRangeItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		ranges = append(ranges, fromBlockedRangeItem(it))
	}
	return ranges, nil
}

func toBlockedRangeItem(br entities.BlockedDateRange) blockedRangeItem {
	return blockedRangeItem{
		ID:        br.ID,
		ListingID: br.ListingID,
		StartDate: br.StartDate,
		EndDate:   br.EndDate,
		CreatedAt: br.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBlockedRangeItem(it blockedRangeItem) entities.BlockedDateRange {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.BlockedDateRange{
		ID:        it.ID,
		ListingID: it.ListingID,
		StartDate: it.StartDate,
		EndDate:   it.EndDate,
		CreatedAt: createdAt,
	}
}
