package interfaces

import (
	"context"
	"tripmarket/internal/domain/entities"
)

// IBlockedRangeRepository abstracts DynamoDB persistence for BlockedDateRange.

type IBlockedRangeRepository interface {
	Create(ctx context.Context, r entities.BlockedDateRange) (entities.BlockedDateRange, error)
	ListByListingID(ctx context.Context, listingID string) ([]entities.BlockedDateRange, error)
}
