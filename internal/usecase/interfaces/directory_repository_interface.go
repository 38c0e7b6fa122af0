package interfaces

import (
	"context"
	"tripmarket/internal/domain/entities"
)

// IDirectoryRepository is the read-only view of users and listings owned by
// other services. Lookups return zero-ID entities when nothing matched.

type IDirectoryRepository interface {
	GetUser(ctx context.Context, id string) (entities.User, error)
	GetListing(ctx context.Context, id string) (entities.Listing, error)
	ListListingIDsByVendor(ctx context.Context, vendorID string) ([]string, error)
}
