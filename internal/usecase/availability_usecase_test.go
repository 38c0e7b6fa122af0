package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"tripmarket/internal/domain/entities"
	mock_interfaces "tripmarket/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAvailabilityUseCase_ComputeUnavailableDates(t *testing.T) {
	t.Run("empty listing id", func(t *testing.T) {
		uc := NewAvailabilityUseCase(nil, nil, nil)
		if _, err := uc.ComputeUnavailableDates(context.Background(), "  "); !errors.Is(err, ErrInvalidListingID) {
			t.Fatalf("expected ErrInvalidListingID, got %v", err)
		}
	})

	t.Run("no bookings and no ranges yields empty set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
		ranges := mock_interfaces.NewMockIBlockedRangeRepository(ctrl)
		uc := NewAvailabilityUseCase(bookings, ranges, nil)

		bookings.EXPECT().ListByListingID(gomock.Any(), "lst-1").Return(nil, nil)
		ranges.EXPECT().ListByListingID(gomock.Any(), "lst-1").Return(nil, nil)

		dates, err := uc.ComputeUnavailableDates(context.Background(), "lst-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(dates) != 0 {
			t.Fatalf("expected empty set, got %v", dates)
		}
	})

	t.Run("unions bookings and blocked ranges, sorted and deduplicated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
		ranges := mock_interfaces.NewMockIBlockedRangeRepository(ctrl)
		uc := NewAvailabilityUseCase(bookings, ranges, nil)

		bookings.EXPECT().ListByListingID(gomock.Any(), "lst-1").Return([]entities.Booking{
			{ID: "bkg-1", Status: entities.BookingStatusConfirmed, Details: entities.BookingDetails{CheckIn: "2026-09-10", CheckOut: "2026-09-12"}},
			{ID: "bkg-2", Status: entities.BookingStatusPending, Details: entities.BookingDetails{CheckIn: "2026-09-12", CheckOut: "2026-09-13"}},
			{ID: "bkg-3", Status: entities.BookingStatusCancelled, Details: entities.BookingDetails{CheckIn: "2026-09-20", CheckOut: "2026-09-25"}},
			{ID: "bkg-4", Status: entities.BookingStatusFailed, Details: entities.BookingDetails{CheckIn: "2026-09-26", CheckOut: "2026-09-27"}},
		}, nil)
		ranges.EXPECT().ListByListingID(gomock.Any(), "lst-1").Return([]entities.BlockedDateRange{
			{ID: "rng-1", StartDate: "2026-09-01", EndDate: "2026-09-02"},
		}, nil)

		dates, err := uc.ComputeUnavailableDates(context.Background(), "lst-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"2026-09-01", "2026-09-02", "2026-09-10", "2026-09-11", "2026-09-12", "2026-09-13"}
		if !reflect.DeepEqual(dates, want) {
			t.Fatalf("expected %v, got %v", want, dates)
		}
	})

	t.Run("skips rows with malformed dates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
		ranges := mock_interfaces.NewMockIBlockedRangeRepository(ctrl)
		uc := NewAvailabilityUseCase(bookings, ranges, nil)

		bookings.EXPECT().ListByListingID(gomock.Any(), "lst-1").Return([]entities.Booking{
			{ID: "bkg-1", Status: entities.BookingStatusConfirmed, Details: entities.BookingDetails{CheckIn: "not-a-date", CheckOut: "2026-09-12"}},
			{ID: "bkg-2", Status: entities.BookingStatusConfirmed, Details: entities.BookingDetails{CheckIn: "2026-09-14", CheckOut: "2026-09-14"}},
		}, nil)
		ranges.EXPECT().ListByListingID(gomock.Any(), "lst-1").Return(nil, nil)

		dates, err := uc.ComputeUnavailableDates(context.Background(), "lst-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"2026-09-14"}
		if !reflect.DeepEqual(dates, want) {
			t.Fatalf("expected %v, got %v", want, dates)
		}
	})

	t.Run("booking repo error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewAvailabilityUseCase(bookings, nil, nil)

		bookings.EXPECT().ListByListingID(gomock.Any(), "lst-1").Return(nil, errors.New("db"))

		if _, err := uc.ComputeUnavailableDates(context.Background(), "lst-1"); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestAvailabilityUseCase_AddBlockedRange(t *testing.T) {
	t.Run("invalid range", func(t *testing.T) {
		uc := NewAvailabilityUseCase(nil, nil, nil)
		if _, err := uc.AddBlockedRange(context.Background(), "lst-1", "2026-09-05", "2026-09-01"); !errors.Is(err, ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("listing not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		directory := mock_interfaces.NewMockIDirectoryRepository(ctrl)
		uc := NewAvailabilityUseCase(nil, nil, directory)

		directory.EXPECT().GetListing(gomock.Any(), "lst-404").Return(entities.Listing{}, nil)

		if _, err := uc.AddBlockedRange(context.Background(), "lst-404", "2026-09-01", "2026-09-05"); !errors.Is(err, ErrListingNotFound) {
			t.Fatalf("expected ErrListingNotFound, got %v", err)
		}
	})

	t.Run("creates the range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		ranges := mock_interfaces.NewMockIBlockedRangeRepository(ctrl)
		directory := mock_interfaces.NewMockIDirectoryRepository(ctrl)
		uc := NewAvailabilityUseCase(nil, ranges, directory)

		directory.EXPECT().GetListing(gomock.Any(), "lst-1").Return(entities.Listing{ID: "lst-1"}, nil)
		ranges.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.BlockedDateRange) (entities.BlockedDateRange, error) {
				if r.ID == "" {
					t.Fatal("expected generated range id")
				}
				if r.ListingID != "lst-1" || r.StartDate != "2026-09-01" || r.EndDate != "2026-09-05" {
					t.Fatalf("unexpected range %+v", r)
				}
				return r, nil
			})

		if _, err := uc.AddBlockedRange(context.Background(), "lst-1", "2026-09-01", "2026-09-05"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
