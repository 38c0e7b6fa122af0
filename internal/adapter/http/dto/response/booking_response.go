package response

import (
	"time"

	"tripmarket/internal/domain/entities"
	"tripmarket/internal/usecase"
)

type BookingDetailsResponse struct {
	CheckIn  string                 `json:"checkIn"`
	CheckOut string                 `json:"checkOut"`
	Guests   int                    `json:"guests"`
	Price    float64                `json:"price"`
	Extras   map[string]interface{} `json:"extras,omitempty"`
}

type BookingResponse struct {
	ID              string                 `json:"id"`
	UserID          string                 `json:"userId"`
	ListingID       string                 `json:"listingId"`
	Details         BookingDetailsResponse `json:"details"`
	Status          string                 `json:"status"`
	PaymentMethod   string                 `json:"paymentMethod"`
	PaymentIntentID string                 `json:"paymentIntentId,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		UserID:    b.UserID,
		ListingID: b.ListingID,
		Details: BookingDetailsResponse{
			CheckIn:  b.Details.CheckIn,
			CheckOut: b.Details.CheckOut,
			Guests:   b.Details.Guests,
			Price:    b.Details.Price,
			Extras:   b.Details.Extras,
		},
		Status:          string(b.Status),
		PaymentMethod:   string(b.PaymentMethod),
		PaymentIntentID: b.PaymentIntentID,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func FromBookings(bs []entities.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, FromBooking(b))
	}
	return out
}

// CreateBookingResponse is what a booking intent returns. ClientSecret only
// appears for card flows that still need client-side confirmation.
type CreateBookingResponse struct {
	BookingID      string `json:"bookingId"`
	Status         string `json:"status"`
	ClientSecret   string `json:"clientSecret,omitempty"`
	RequiresAction bool   `json:"requiresAction,omitempty"`
}

func FromCreationResult(r usecase.BookingCreationResult) CreateBookingResponse {
	return CreateBookingResponse{
		BookingID:      r.BookingID,
		Status:         string(r.Status),
		ClientSecret:   r.ClientSecret,
		RequiresAction: r.RequiresAction,
	}
}
