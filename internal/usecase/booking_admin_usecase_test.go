package usecase

import (
	"context"
	"errors"
	"testing"

	"tripmarket/internal/domain/entities"
	mock_interfaces "tripmarket/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestBookingAdminUseCase_GetByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewBookingAdminUseCase(nil, nil)
		if _, err := uc.GetByID(context.Background(), " "); !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingAdminUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "bkg-404").Return(entities.Booking{}, nil)

		if _, err := uc.GetByID(context.Background(), "bkg-404"); !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingAdminUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "bkg-1").Return(entities.Booking{ID: "bkg-1"}, nil)

		b, err := uc.GetByID(context.Background(), "bkg-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.ID != "bkg-1" {
			t.Fatalf("expected bkg-1, got %s", b.ID)
		}
	})
}

func TestBookingAdminUseCase_Override(t *testing.T) {
	confirmed := entities.BookingStatusConfirmed
	cancelled := entities.BookingStatusCancelled
	bogus := entities.BookingStatus("archived")

	t.Run("no fields", func(t *testing.T) {
		uc := NewBookingAdminUseCase(nil, nil)
		if _, err := uc.Override(context.Background(), "bkg-1", nil, nil, nil); !errors.Is(err, ErrInvalidOverride) {
			t.Fatalf("expected ErrInvalidOverride, got %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc := NewBookingAdminUseCase(nil, nil)
		if _, err := uc.Override(context.Background(), "bkg-1", &bogus, nil, nil); !errors.Is(err, ErrInvalidOverride) {
			t.Fatalf("expected ErrInvalidOverride, got %v", err)
		}
	})

	t.Run("invalid details", func(t *testing.T) {
		uc := NewBookingAdminUseCase(nil, nil)
		details := &entities.BookingDetails{CheckIn: "2026-09-10", CheckOut: "2026-09-12", Guests: 0, Price: 100}
		if _, err := uc.Override(context.Background(), "bkg-1", nil, nil, details); !errors.Is(err, ErrInvalidOverride) {
			t.Fatalf("expected ErrInvalidOverride, got %v", err)
		}
	})

	t.Run("unknown booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingAdminUseCase(repo, nil)

		repo.EXPECT().Override(gomock.Any(), "bkg-404", &confirmed, nil, nil).Return(entities.Booking{}, nil)

		if _, err := uc.Override(context.Background(), "bkg-404", &confirmed, nil, nil); !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("blocking status keeps claims", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingAdminUseCase(repo, nil)

		repo.EXPECT().Override(gomock.Any(), "bkg-1", &confirmed, nil, nil).
			Return(entities.Booking{ID: "bkg-1", Status: confirmed}, nil)

		b, err := uc.Override(context.Background(), "bkg-1", &confirmed, nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Status != confirmed {
			t.Fatalf("expected confirmed, got %s", b.Status)
		}
	})

	t.Run("cancelling reopens the calendar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingAdminUseCase(repo, nil)

		updated := entities.Booking{ID: "bkg-1", Status: cancelled}
		repo.EXPECT().Override(gomock.Any(), "bkg-1", &cancelled, nil, nil).Return(updated, nil)
		repo.EXPECT().ReleaseClaims(gomock.Any(), updated).Return(nil)

		if _, err := uc.Override(context.Background(), "bkg-1", &cancelled, nil, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBookingAdminUseCase_Delete(t *testing.T) {
	t.Run("unknown booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingAdminUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "bkg-404").Return(entities.Booking{}, nil)

		if err := uc.Delete(context.Background(), "bkg-404"); !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("releases claims before deleting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingAdminUseCase(repo, nil)

		b := entities.Booking{ID: "bkg-1", Status: entities.BookingStatusConfirmed}
		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), "bkg-1").Return(b, nil),
			repo.EXPECT().ReleaseClaims(gomock.Any(), b).Return(nil),
			repo.EXPECT().Delete(gomock.Any(), "bkg-1").Return(nil),
		)

		if err := uc.Delete(context.Background(), "bkg-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBookingAdminUseCase_ListForVendor(t *testing.T) {
	t.Run("empty vendor id", func(t *testing.T) {
		uc := NewBookingAdminUseCase(nil, nil)
		if _, err := uc.ListForVendor(context.Background(), " "); !errors.Is(err, ErrInvalidVendorID) {
			t.Fatalf("expected ErrInvalidVendorID, got %v", err)
		}
	})

	t.Run("only bookings on the vendor's listings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		directory := mock_interfaces.NewMockIDirectoryRepository(ctrl)
		uc := NewBookingAdminUseCase(repo, directory)

		directory.EXPECT().ListListingIDsByVendor(gomock.Any(), "vnd-1").Return([]string{"lst-1", "lst-2"}, nil)
		repo.EXPECT().ListByListingID(gomock.Any(), "lst-1").Return([]entities.Booking{{ID: "bkg-1", ListingID: "lst-1"}}, nil)
		repo.EXPECT().ListByListingID(gomock.Any(), "lst-2").Return([]entities.Booking{{ID: "bkg-2", ListingID: "lst-2"}}, nil)

		bookings, err := uc.ListForVendor(context.Background(), "vnd-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(bookings) != 2 {
			t.Fatalf("expected 2 bookings, got %d", len(bookings))
		}
	})

	t.Run("vendor without listings gets an empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		directory := mock_interfaces.NewMockIDirectoryRepository(ctrl)
		uc := NewBookingAdminUseCase(nil, directory)

		directory.EXPECT().ListListingIDsByVendor(gomock.Any(), "vnd-2").Return(nil, nil)

		bookings, err := uc.ListForVendor(context.Background(), "vnd-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(bookings) != 0 {
			t.Fatalf("expected no bookings, got %v", bookings)
		}
	})
}
