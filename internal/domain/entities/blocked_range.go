package entities

import "time"

// BlockedDateRange is a vendor-declared closed period for a listing. Both
// StartDate and EndDate are ISO dates (YYYY-MM-DD), inclusive. It has no
// lifecycle beyond create/read; availability is its only consumer.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (listing_id-index): listing_id
type BlockedDateRange struct {
	ID        string    `json:"id"`
	ListingID string    `json:"listingId"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	CreatedAt time.Time `json:"createdAt"`
}
