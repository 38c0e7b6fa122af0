package entities

// User and Listing are collaborator entities: the booking service only reads
// them (existence checks, vendor resolution, processor customer id). Their
// full lifecycle lives in other services.

type User struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	CustomerID string `json:"customerId,omitempty"` // payment processor customer reference
}

// Listing is the bookable unit. VendorID scopes vendor queries: a vendor may
// only see bookings whose listing it owns.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (vendor_id-index): vendor_id
type Listing struct {
	ID       string `json:"id"`
	VendorID string `json:"vendorId"`
	Title    string `json:"title"`
}
