package interfaces

import (
	"context"
	"errors"
	"tripmarket/internal/domain/entities"
)

var (
	// ErrDayClaimConflict means at least one stay day is already claimed by
	// another pending/confirmed booking for the same listing.
	ErrDayClaimConflict = errors.New("stay dates already claimed")
	// ErrIntentClaimConflict means another booking already holds the same
	// payment intent id.
	ErrIntentClaimConflict = errors.New("payment intent already claimed")
)

// IBookingRepository abstracts DynamoDB persistence for Booking.
//
// CreateWithClaims must be atomic: the booking item, one claim per stay day
// and (for card bookings) the payment-intent claim are written in a single
// transaction, so two overlapping bookings or two bookings sharing an intent
// id can never both succeed. Claim failures surface as ErrDayClaimConflict /
// ErrIntentClaimConflict.
//
// UpdateStatusByID and UpdateStatusByPaymentIntentID are absolute single-item
// SET operations; redundant writes (webhook replay, webhook-vs-sync race) are
// harmless. Both return a zero-ID booking when nothing matched.

type IBookingRepository interface {
	CreateWithClaims(ctx context.Context, b entities.Booking, claimDays []string) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	FindByPaymentIntentID(ctx context.Context, intentID string) (entities.Booking, error)
	ListAll(ctx context.Context) ([]entities.Booking, error)
	ListByListingID(ctx context.Context, listingID string) ([]entities.Booking, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error)
	UpdateStatusByPaymentIntentID(ctx context.Context, intentID string, status entities.BookingStatus) (entities.Booking, error)
	Override(ctx context.Context, id string, status *entities.BookingStatus, paymentMethod *entities.PaymentMethod, details *entities.BookingDetails) (entities.Booking, error)
	Delete(ctx context.Context, id string) error
	ReleaseClaims(ctx context.Context, b entities.Booking) error
}
