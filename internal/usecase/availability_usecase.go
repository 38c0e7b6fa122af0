package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"tripmarket/internal/domain/entities"
	"tripmarket/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidListingID = errors.New("invalid listing id")
	ErrInvalidDateRange = errors.New("invalid date range")
)

// IAvailabilityUseCase derives the unavailable calendar for a listing and
// manages vendor-entered blocked ranges.
//
// The computed set is advisory: a concurrent booking can land between the
// read and a later create. The storage-level day claims, not this index, are
// what actually prevents double-booking.

type IAvailabilityUseCase interface {
	ComputeUnavailableDates(ctx context.Context, listingID string) ([]string, error)
	AddBlockedRange(ctx context.Context, listingID, startDate, endDate string) (entities.BlockedDateRange, error)
	ListBlockedRanges(ctx context.Context, listingID string) ([]entities.BlockedDateRange, error)
}

type AvailabilityUseCase struct {
	bookings  interfaces.IBookingRepository
	ranges    interfaces.IBlockedRangeRepository
	directory interfaces.IDirectoryRepository
}

var _ IAvailabilityUseCase = (*AvailabilityUseCase)(nil)

func NewAvailabilityUseCase(bookings interfaces.IBookingRepository, ranges interfaces.IBlockedRangeRepository, directory interfaces.IDirectoryRepository) *AvailabilityUseCase {
	return &AvailabilityUseCase{bookings: bookings, ranges: ranges, directory: directory}
}

// ComputeUnavailableDates returns the sorted union of every calendar day
// covered by a pending/confirmed booking and every blocked range, check-in
// through check-out inclusive. Empty inputs yield an empty (available) set.
func (u *AvailabilityUseCase) ComputeUnavailableDates(ctx context.Context, listingID string) ([]string, error) {
	listingID = strings.TrimSpace(listingID)
	if listingID == "" {
		return nil, ErrInvalidListingID
	}

	unavailable := make(map[string]struct{})

	bookings, err := u.bookings.ListByListingID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	for _, b := range bookings {
		if !b.Status.BlocksDates() {
			continue
		}
		days, err := entities.DaysBetween(b.Details.CheckIn, b.Details.CheckOut)
		if err != nil {
			log.Printf("[availability][usecase] skipping booking with bad dates booking_id=%s err=%v", b.ID, err)
			continue
		}
		for _, d := range days {
			unavailable[d] = struct{}{}
		}
	}

	blocked, err := u.ranges.ListByListingID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	for _, br := range blocked {
		days, err := entities.DaysBetween(br.StartDate, br.EndDate)
		if err != nil {
			log.Printf("[availability][usecase] skipping blocked range with bad dates range_id=%s err=%v", br.ID, err)
			continue
		}
		for _, d := range days {
			unavailable[d] = struct{}{}
		}
	}

	dates := make([]string, 0, len(unavailable))
	for d := range unavailable {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates, nil
}

func (u *AvailabilityUseCase) AddBlockedRange(ctx context.Context, listingID, startDate, endDate string) (entities.BlockedDateRange, error) {
	listingID = strings.TrimSpace(listingID)
	if listingID == "" {
		return entities.BlockedDateRange{}, ErrInvalidListingID
	}
	if _, err := entities.DaysBetween(startDate, endDate); err != nil {
		return entities.BlockedDateRange{}, ErrInvalidDateRange
	}

	listing, err := u.directory.GetListing(ctx, listingID)
	if err != nil {
		return entities.BlockedDateRange{}, err
	}
	if listing.ID == "" {
		return entities.BlockedDateRange{}, ErrListingNotFound
	}

	br := entities.BlockedDateRange{
		ID:        uuid.NewString(),
		ListingID: listingID,
		StartDate: startDate,
		EndDate:   endDate,
		CreatedAt: time.Now().UTC(),
	}
	return u.ranges.Create(ctx, br)
}

func (u *AvailabilityUseCase) ListBlockedRanges(ctx context.Context, listingID string) ([]entities.BlockedDateRange, error) {
	listingID = strings.TrimSpace(listingID)
	if listingID == "" {
		return nil, ErrInvalidListingID
	}
	return u.ranges.ListByListingID(ctx, listingID)
}
