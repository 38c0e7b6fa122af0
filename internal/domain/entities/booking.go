package entities

import "time"

// BookingStatus represents the reservation lifecycle.
//
// Transitions:
//   - cod bookings are created confirmed.
//   - card bookings are created pending and finalized by the payment
//     processor's asynchronous events (confirmed/failed).
//   - cancelled is only reachable through the admin/vendor override path.

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusFailed    BookingStatus = "failed"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusFailed:
		return true
	}
	return false
}

// BlocksDates reports whether a booking in this status keeps its stay dates
// out of the listing's availability.
func (s BookingStatus) BlocksDates() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

type PaymentMethod string

const (
	PaymentMethodStripe PaymentMethod = "stripe"
	PaymentMethodCOD    PaymentMethod = "cod"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodStripe || m == PaymentMethodCOD
}

// BookingDetails is the stay description attached to a booking. CheckIn and
// CheckOut are ISO dates (YYYY-MM-DD), both inclusive for availability. Extras
// carries any additional client-supplied fields as-is.
type BookingDetails struct {
	CheckIn  string                 `json:"checkIn"`
	CheckOut string                 `json:"checkOut"`
	Guests   int                    `json:"guests"`
	Price    float64                `json:"price"`
	Extras   map[string]interface{} `json:"extras,omitempty"`
}

// Booking is the reservation entity persisted in DynamoDB.
//
// Storage model:
//   - PK: id
//   - GSI1 (listing_id-index): listing_id
//   - GSI2 (payment_intent_id-index): payment_intent_id
//
// PaymentIntentID is the only correlation between a booking and the payment
// processor's asynchronous events; it is empty for cod bookings and must be
// unique across bookings (enforced by a claim item, see the repository).
type Booking struct {
	ID              string         `json:"id"`
	UserID          string         `json:"userId"`
	ListingID       string         `json:"listingId"`
	Details         BookingDetails `json:"details"`
	Status          BookingStatus  `json:"status"`
	PaymentMethod   PaymentMethod  `json:"paymentMethod"`
	PaymentIntentID string         `json:"paymentIntentId,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}
