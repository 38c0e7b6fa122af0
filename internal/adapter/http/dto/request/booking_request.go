package request

import (
	"strings"

	"tripmarket/internal/domain/entities"
)

// BookingDetailsRequest mirrors the details bag of a booking intent. Guests
// and price bounds are checked by the use case so the caller gets a precise
// error code instead of a generic binding failure.
type BookingDetailsRequest struct {
	CheckIn  string                 `json:"checkIn" binding:"required"`
	CheckOut string                 `json:"checkOut" binding:"required"`
	Guests   int                    `json:"guests"`
	Price    float64                `json:"price"`
	Extras   map[string]interface{} `json:"extras"`
}

// CreateBookingRequest is the booking-intent payload.
type CreateBookingRequest struct {
	UserID          string                `json:"userId" binding:"required"`
	ListingID       string                `json:"listingId" binding:"required"`
	Details         BookingDetailsRequest `json:"details" binding:"required"`
	PaymentMethod   string                `json:"paymentMethod" binding:"required"`
	PaymentMethodID string                `json:"paymentMethodId"`
}

func (r CreateBookingRequest) ToDetails() entities.BookingDetails {
	return entities.BookingDetails{
		CheckIn:  strings.TrimSpace(r.Details.CheckIn),
		CheckOut: strings.TrimSpace(r.Details.CheckOut),
		Guests:   r.Details.Guests,
		Price:    r.Details.Price,
		Extras:   r.Details.Extras,
	}
}

// OverrideBookingRequest is the admin/vendor escape-hatch payload. Absent
// fields are left untouched.
type OverrideBookingRequest struct {
	Status        *string                `json:"status"`
	PaymentMethod *string                `json:"paymentMethod"`
	Details       *BookingDetailsRequest `json:"details"`
}

func (r OverrideBookingRequest) ToOverride() (*entities.BookingStatus, *entities.PaymentMethod, *entities.BookingDetails) {
	var status *entities.BookingStatus
	if r.Status != nil {
		s := entities.BookingStatus(strings.TrimSpace(*r.Status))
		status = &s
	}
	var method *entities.PaymentMethod
	if r.PaymentMethod != nil {
		m := entities.PaymentMethod(strings.TrimSpace(*r.PaymentMethod))
		method = &m
	}
	var details *entities.BookingDetails
	if r.Details != nil {
		d := entities.BookingDetails{
			CheckIn:  strings.TrimSpace(r.Details.CheckIn),
			CheckOut: strings.TrimSpace(r.Details.CheckOut),
			Guests:   r.Details.Guests,
			Price:    r.Details.Price,
			Extras:   r.Details.Extras,
		}
		details = &d
	}
	return status, method, details
}
