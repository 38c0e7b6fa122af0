package interfaces

import "context"

// BookingEvent is the payload published for booking notifications. Consumers
// (email service, vendor dashboard) live outside this service.
type BookingEvent struct {
	Event      string `json:"event"`
	OccurredAt string `json:"occurred_at"`
	BookingID  string `json:"booking_id"`
	UserID     string `json:"user_id"`
	ListingID  string `json:"listing_id"`
	VendorID   string `json:"vendor_id,omitempty"`
	Status     string `json:"status"`
}

// INotifier dispatches booking events, fire-and-forget: callers log publish
// failures but never fail the surrounding operation because of them.
type INotifier interface {
	PublishBookingEvent(ctx context.Context, routingKey string, ev BookingEvent) error
}
