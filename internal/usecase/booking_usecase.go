package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"tripmarket/internal/domain/entities"
	"tripmarket/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrMissingBookingFields        = errors.New("missing booking fields")
	ErrInvalidBookingDates         = errors.New("invalid booking dates")
	ErrInvalidGuests               = errors.New("invalid guests count")
	ErrInvalidPrice                = errors.New("invalid price")
	ErrInvalidPaymentMethod        = errors.New("invalid payment method")
	ErrUserNotFound                = errors.New("user not found")
	ErrListingNotFound             = errors.New("listing not found")
	ErrDatesUnavailable            = errors.New("dates unavailable")
	ErrDuplicatePaymentIntent      = errors.New("duplicate payment intent correlation")
	ErrPaymentProcessing           = errors.New("payment processing failed")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
)

// CreateBookingInput is the booking intent submitted by a client.
// PaymentMethodID is only meaningful for card payments: present means "charge
// my saved method off-session", absent means "start a new-card payment".
type CreateBookingInput struct {
	UserID          string
	ListingID       string
	Details         entities.BookingDetails
	PaymentMethod   entities.PaymentMethod
	PaymentMethodID string
}

// BookingCreationResult is what the caller needs to proceed. ClientSecret is
// set for card flows that still require client-side confirmation (new card)
// or step-up authentication (saved card).
type BookingCreationResult struct {
	BookingID      string
	Status         entities.BookingStatus
	ClientSecret   string
	RequiresAction bool
}

// IBookingUseCase is the payment orchestrator: it validates a booking intent,
// drives the chosen payment path against the processor and writes the booking
// record with its conflict claims.

type IBookingUseCase interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (BookingCreationResult, error)
}

type BookingUseCase struct {
	repo      interfaces.IBookingRepository
	directory interfaces.IDirectoryRepository
	gateway   interfaces.IPaymentGateway
	notifier  interfaces.INotifier
	currency  string
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(repo interfaces.IBookingRepository, directory interfaces.IDirectoryRepository, gateway interfaces.IPaymentGateway, notifier interfaces.INotifier, currency string) *BookingUseCase {
	if currency == "" {
		currency = "usd"
	}
	return &BookingUseCase{repo: repo, directory: directory, gateway: gateway, notifier: notifier, currency: currency}
}

func (u *BookingUseCase) CreateBooking(ctx context.Context, in CreateBookingInput) (BookingCreationResult, error) {
	in.UserID = strings.TrimSpace(in.UserID)
	in.ListingID = strings.TrimSpace(in.ListingID)
	log.Printf("[booking][usecase] create start user_id=%s listing_id=%s method=%s", in.UserID, in.ListingID, in.PaymentMethod)

	if in.UserID == "" || in.ListingID == "" || in.Details.CheckIn == "" || in.Details.CheckOut == "" {
		return BookingCreationResult{}, ErrMissingBookingFields
	}
	stayDays, err := entities.DaysBetween(in.Details.CheckIn, in.Details.CheckOut)
	if err != nil {
		return BookingCreationResult{}, ErrInvalidBookingDates
	}
	if in.Details.Guests < 1 {
		return BookingCreationResult{}, ErrInvalidGuests
	}
	if in.Details.Price <= 0 {
		return BookingCreationResult{}, ErrInvalidPrice
	}
	if !in.PaymentMethod.Valid() {
		return BookingCreationResult{}, ErrInvalidPaymentMethod
	}

	user, err := u.directory.GetUser(ctx, in.UserID)
	if err != nil {
		return BookingCreationResult{}, err
	}
	if user.ID == "" {
		return BookingCreationResult{}, ErrUserNotFound
	}
	listing, err := u.directory.GetListing(ctx, in.ListingID)
	if err != nil {
		return BookingCreationResult{}, err
	}
	if listing.ID == "" {
		return BookingCreationResult{}, ErrListingNotFound
	}

	switch in.PaymentMethod {
	case entities.PaymentMethodCOD:
		return u.createCashBooking(ctx, in, listing, stayDays)
	case entities.PaymentMethodStripe:
		if u.gateway == nil {
			log.Printf("[booking][usecase] gateway not configured user_id=%s", in.UserID)
			return BookingCreationResult{}, ErrPaymentGatewayNotConfigured
		}
		if in.PaymentMethodID == "" {
			return u.createNewCardBooking(ctx, in, listing, stayDays)
		}
		return u.createSavedCardBooking(ctx, in, user, listing, stayDays)
	}
	return BookingCreationResult{}, ErrInvalidPaymentMethod
}

// Cash bookings confirm immediately: there is no external charge to wait for.
func (u *BookingUseCase) createCashBooking(ctx context.Context, in CreateBookingInput, listing entities.Listing, stayDays []string) (BookingCreationResult, error) {
	b := u.newBooking(in, entities.BookingStatusConfirmed, "")
	if _, err := u.repo.CreateWithClaims(ctx, b, stayDays); err != nil {
		return BookingCreationResult{}, mapClaimError(err)
	}
	log.Printf("[booking][usecase] cash booking confirmed booking_id=%s listing_id=%s", b.ID, b.ListingID)

	u.notify(ctx, "booking.confirmed", b, listing.VendorID)
	return BookingCreationResult{BookingID: b.ID, Status: b.Status}, nil
}

// New-card flow is two-phase: the intent is created here, the booking is
// written pending in the same request, and the client confirms against the
// processor directly. Only the webhook finalizes the status.
func (u *BookingUseCase) createNewCardBooking(ctx context.Context, in CreateBookingInput, listing entities.Listing, stayDays []string) (BookingCreationResult, error) {
	res, err := u.gateway.CreateIntent(ctx, minorUnits(in.Details.Price), u.currency, u.intentMetadata(in))
	if err != nil {
		log.Printf("[booking][usecase] intent creation failed user_id=%s err=%v", in.UserID, err)
		return BookingCreationResult{}, fmt.Errorf("%w: %v", ErrPaymentProcessing, err)
	}

	b := u.newBooking(in, entities.BookingStatusPending, res.IntentID)
	if _, err := u.repo.CreateWithClaims(ctx, b, stayDays); err != nil {
		return BookingCreationResult{}, mapClaimError(err)
	}
	log.Printf("[booking][usecase] card booking pending booking_id=%s intent_id=%s", b.ID, res.IntentID)

	u.notify(ctx, "booking.created", b, listing.VendorID)
	return BookingCreationResult{BookingID: b.ID, Status: b.Status, ClientSecret: res.ClientSecret}, nil
}

func (u *BookingUseCase) createSavedCardBooking(ctx context.Context, in CreateBookingInput, user entities.User, listing entities.Listing, stayDays []string) (BookingCreationResult, error) {
	if err := u.gateway.VerifyMethodOwner(ctx, in.PaymentMethodID, user.CustomerID); err != nil {
		log.Printf("[booking][usecase] foreign payment method user_id=%s pm=%s", in.UserID, in.PaymentMethodID)
		return BookingCreationResult{}, err
	}

	res, err := u.gateway.ChargeSavedMethod(ctx, minorUnits(in.Details.Price), u.currency, in.PaymentMethodID, user.CustomerID, u.intentMetadata(in))
	if err != nil {
		if errors.Is(err, interfaces.ErrCardDeclined) {
			// Keep a failed record around the intent id so support can trace
			// the decline. It claims no stay days.
			if res.IntentID != "" {
				failed := u.newBooking(in, entities.BookingStatusFailed, res.IntentID)
				if _, perr := u.repo.CreateWithClaims(ctx, failed, nil); perr != nil {
					log.Printf("[booking][usecase] could not persist declined booking intent_id=%s err=%v", res.IntentID, perr)
				}
			}
			return BookingCreationResult{}, err
		}
		log.Printf("[booking][usecase] off-session charge failed user_id=%s err=%v", in.UserID, err)
		return BookingCreationResult{}, fmt.Errorf("%w: %v", ErrPaymentProcessing, err)
	}

	status := entities.BookingStatusPending
	if res.Succeeded {
		// Synchronous success is authoritative; the later webhook for the
		// same intent becomes an idempotent no-op.
		status = entities.BookingStatusConfirmed
	}

	b := u.newBooking(in, status, res.IntentID)
	if _, err := u.repo.CreateWithClaims(ctx, b, stayDays); err != nil {
		return BookingCreationResult{}, mapClaimError(err)
	}
	log.Printf("[booking][usecase] saved-card booking booking_id=%s intent_id=%s status=%s requires_action=%t", b.ID, res.IntentID, status, res.RequiresAction)

	if status == entities.BookingStatusConfirmed {
		u.notify(ctx, "booking.confirmed", b, listing.VendorID)
		return BookingCreationResult{BookingID: b.ID, Status: status}, nil
	}
	u.notify(ctx, "booking.created", b, listing.VendorID)
	return BookingCreationResult{BookingID: b.ID, Status: status, ClientSecret: res.ClientSecret, RequiresAction: res.RequiresAction}, nil
}

func (u *BookingUseCase) newBooking(in CreateBookingInput, status entities.BookingStatus, intentID string) entities.Booking {
	now := time.Now().UTC()
	return entities.Booking{
		ID:              uuid.NewString(),
		UserID:          in.UserID,
		ListingID:       in.ListingID,
		Details:         in.Details,
		Status:          status,
		PaymentMethod:   in.PaymentMethod,
		PaymentIntentID: intentID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (u *BookingUseCase) intentMetadata(in CreateBookingInput) map[string]string {
	return map[string]string{"userId": in.UserID, "listingId": in.ListingID}
}

func (u *BookingUseCase) notify(ctx context.Context, routingKey string, b entities.Booking, vendorID string) {
	if u.notifier == nil {
		return
	}
	ev := interfaces.BookingEvent{
		Event:      routingKey,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
		BookingID:  b.ID,
		UserID:     b.UserID,
		ListingID:  b.ListingID,
		VendorID:   vendorID,
		Status:     string(b.Status),
	}
	if err := u.notifier.PublishBookingEvent(ctx, routingKey, ev); err != nil {
		log.Printf("[booking][usecase] publish %s failed booking_id=%s err=%v", routingKey, b.ID, err)
	}
}

// minorUnits converts a price to the processor's integer minor currency
// units without float drift (149.99 -> 14999).
func minorUnits(price float64) int64 {
	return decimal.NewFromFloat(price).Shift(2).Round(0).IntPart()
}

func mapClaimError(err error) error {
	switch {
	case errors.Is(err, interfaces.ErrDayClaimConflict):
		return ErrDatesUnavailable
	case errors.Is(err, interfaces.ErrIntentClaimConflict):
		return ErrDuplicatePaymentIntent
	}
	return err
}
