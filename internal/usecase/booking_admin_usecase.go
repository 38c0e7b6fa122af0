package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"tripmarket/internal/domain/entities"
	"tripmarket/internal/usecase/interfaces"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidVendorID = errors.New("invalid vendor id")
	ErrInvalidOverride = errors.New("invalid override payload")
)

// IBookingAdminUseCase is the management surface over the booking store.
//
// Override is a deliberate escape hatch: it writes status/paymentMethod/
// details directly, bypassing the payment-driven state machine. It lives here
// so the two write paths never share code with the orchestrator or the
// reconciler.

type IBookingAdminUseCase interface {
	ListAll(ctx context.Context) ([]entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	Override(ctx context.Context, id string, status *entities.BookingStatus, paymentMethod *entities.PaymentMethod, details *entities.BookingDetails) (entities.Booking, error)
	Delete(ctx context.Context, id string) error
	ListForVendor(ctx context.Context, vendorID string) ([]entities.Booking, error)
}

type BookingAdminUseCase struct {
	repo      interfaces.IBookingRepository
	directory interfaces.IDirectoryRepository
}

var _ IBookingAdminUseCase = (*BookingAdminUseCase)(nil)

func NewBookingAdminUseCase(repo interfaces.IBookingRepository, directory interfaces.IDirectoryRepository) *BookingAdminUseCase {
	return &BookingAdminUseCase{repo: repo, directory: directory}
}

func (u *BookingAdminUseCase) ListAll(ctx context.Context) ([]entities.Booking, error) {
	return u.repo.ListAll(ctx)
}

func (u *BookingAdminUseCase) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

func (u *BookingAdminUseCase) Override(ctx context.Context, id string, status *entities.BookingStatus, paymentMethod *entities.PaymentMethod, details *entities.BookingDetails) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	if status == nil && paymentMethod == nil && details == nil {
		return entities.Booking{}, ErrInvalidOverride
	}
	if status != nil && !status.Valid() {
		return entities.Booking{}, ErrInvalidOverride
	}
	if paymentMethod != nil && !paymentMethod.Valid() {
		return entities.Booking{}, ErrInvalidOverride
	}
	if details != nil {
		if _, err := entities.DaysBetween(details.CheckIn, details.CheckOut); err != nil {
			return entities.Booking{}, ErrInvalidOverride
		}
		if details.Guests < 1 || details.Price <= 0 {
			return entities.Booking{}, ErrInvalidOverride
		}
	}

	updated, err := u.repo.Override(ctx, id, status, paymentMethod, details)
	if err != nil {
		return entities.Booking{}, err
	}
	if updated.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	log.Printf("[admin][usecase] booking override booking_id=%s status=%s", updated.ID, updated.Status)

	// An override into a non-blocking status reopens the calendar days.
	if status != nil && !status.BlocksDates() {
		if err := u.repo.ReleaseClaims(ctx, updated); err != nil {
			log.Printf("[admin][usecase] releasing claims failed booking_id=%s err=%v", updated.ID, err)
		}
	}
	return updated, nil
}

func (u *BookingAdminUseCase) Delete(ctx context.Context, id string) error {
	b, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.repo.ReleaseClaims(ctx, b); err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, b.ID); err != nil {
		return err
	}
	log.Printf("[admin][usecase] booking deleted booking_id=%s", b.ID)
	return nil
}

// ListForVendor resolves the vendor's listings first and only then collects
// bookings, so a vendor can never see bookings on listings it does not own.
func (u *BookingAdminUseCase) ListForVendor(ctx context.Context, vendorID string) ([]entities.Booking, error) {
	vendorID = strings.TrimSpace(vendorID)
	if vendorID == "" {
		return nil, ErrInvalidVendorID
	}

	listingIDs, err := u.directory.ListListingIDsByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	bookings := make([]entities.Booking, 0)
	for _, listingID := range listingIDs {
		bs, err := u.repo.ListByListingID(ctx, listingID)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, bs...)
	}
	return bookings, nil
}
