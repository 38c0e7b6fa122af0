package usecase

import (
	"context"
	"errors"
	"testing"

	"tripmarket/internal/domain/entities"
	"tripmarket/internal/usecase/interfaces"
	mock_interfaces "tripmarket/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validBookingInput(method entities.PaymentMethod) CreateBookingInput {
	return CreateBookingInput{
		UserID:        "user-1",
		ListingID:     "lst-1",
		PaymentMethod: method,
		Details: entities.BookingDetails{
			CheckIn:  "2026-09-10",
			CheckOut: "2026-09-12",
			Guests:   2,
			Price:    149.99,
		},
	}
}

func expectDirectoryLookups(directory *mock_interfaces.MockIDirectoryRepository) {
	directory.EXPECT().GetUser(gomock.Any(), "user-1").Return(entities.User{ID: "user-1", CustomerID: "cus_1"}, nil)
	directory.EXPECT().GetListing(gomock.Any(), "lst-1").Return(entities.Listing{ID: "lst-1", VendorID: "vnd-1"}, nil)
}

func TestBookingUseCase_CreateBooking_Validations(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil, nil, nil, "")
		in := validBookingInput(entities.PaymentMethodCOD)
		in.UserID = "  "
		if _, err := uc.CreateBooking(context.Background(), in); !errors.Is(err, ErrMissingBookingFields) {
			t.Fatalf("expected ErrMissingBookingFields, got %v", err)
		}
	})

	t.Run("reversed dates", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil, nil, nil, "")
		in := validBookingInput(entities.PaymentMethodCOD)
		in.Details.CheckIn = "2026-09-12"
		in.Details.CheckOut = "2026-09-10"
		if _, err := uc.CreateBooking(context.Background(), in); !errors.Is(err, ErrInvalidBookingDates) {
			t.Fatalf("expected ErrInvalidBookingDates, got %v", err)
		}
	})

	t.Run("malformed dates", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil, nil, nil, "")
		in := validBookingInput(entities.PaymentMethodCOD)
		in.Details.CheckOut = "next tuesday"
		if _, err := uc.CreateBooking(context.Background(), in); !errors.Is(err, ErrInvalidBookingDates) {
			t.Fatalf("expected ErrInvalidBookingDates, got %v", err)
		}
	})

	t.Run("zero guests", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil, nil, nil, "")
		in := validBookingInput(entities.PaymentMethodCOD)
		in.Details.Guests = 0
		if _, err := uc.CreateBooking(context.Background(), in); !errors.Is(err, ErrInvalidGuests) {
			t.Fatalf("expected ErrInvalidGuests, got %v", err)
		}
	})

	t.Run("non-positive price", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil, nil, nil, "")
		in := validBookingInput(entities.PaymentMethodCOD)
		in.Details.Price = 0
		if _, err := uc.CreateBooking(context.Background(), in); !errors.Is(err, ErrInvalidPrice) {
			t.Fatalf("expected ErrInvalidPrice, got %v", err)
		}
	})

	t.Run("unsupported payment method", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil, nil, nil, "")
		in := validBookingInput(entities.PaymentMethod("bitcoin"))
		if _, err := uc.CreateBooking(context.Background(), in); !errors.Is(err, ErrInvalidPaymentMethod) {
			t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
		}
	})

	t.Run("user not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		directory := mock_interfaces.NewMockIDirectoryRepository(ctrl)
		uc := NewBookingUseCase(nil, directory, nil, nil, "")

		directory.EXPECT().GetUser(gomock.Any(), "user-1").Return(entities.User{}, nil)

		if _, err := uc.CreateBooking(context.Background(), validBookingInput(entities.PaymentMethodCOD)); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("listing not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		directory := mock_interfaces.NewMockIDirectoryRepository(ctrl)
		uc := NewBookingUseCase(nil, directory, nil, nil, "")

		directory.EXPECT().GetUser(gomock.Any(), "user-1").Return(entities.User{ID: "user-1"}, nil)
		directory.EXPECT().GetListing(gomock.Any(), "lst-1").Return(entities.Listing{}, nil)

		if _, err := uc.CreateBooking(context.Background(), validBookingInput(entities.PaymentMethodCOD)); !errors.Is(err, ErrListingNotFound) {
			t.Fatalf("expected ErrListingNotFound, got %v", err)
		}
	})
}

func TestBookingUseCase_CreateBooking_Cash(t *testing.T) {
	t.Run("confirmed immediately and claims every stay day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		directory := mock_interfaces.NewMockIDirectoryRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewBookingUseCase(repo, directory, nil, notifier, "usd")

		expectDirectoryLookups(directory)
		repo.EXPECT().CreateWithClaims(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Booking, claimDays []string) (entities.Booking, error) {
				if b.Status != entities.BookingStatusConfirmed {
					t.Fatalf("expected confirmed booking, got %s", b.Status)
				}
				if b.PaymentIntentID != "" {
					t.Fatalf("cod booking should carry no payment intent, got %s", b.PaymentIntentID)
				}
				want := []string{"2026-09-10", "2026-09-11", "2026-09-12"}
				if len(claimDays) != len(want) {
					t.Fatalf("expected %d claim days, got %v", len(want), claimDays)
				}
				for i, d := range want {
					if claimDays[i] != d {
						t.Fatalf("expected claim day %s at %d, got %s", d, i, claimDays[i])
					}
				}
				return b, nil
			})
		notifier.EXPECT().PublishBookingEvent(gomock.Any(), "booking.confirmed", gomock.Any()).Return(nil)

		result, err := uc.CreateBooking(context.Background(), validBookingInput(entities.PaymentMethodCOD))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Status != entities.BookingStatusConfirmed {
			t.Fatalf("expected confirmed, got %s", result.Status)
		}
		if result.BookingID == "" {
			t.Fatal("expected a booking id")
		}
		if result.ClientSecret != "" || result.RequiresAction {
			t.Fatal("cash booking should not carry a client secret")
		}
	})

	t.Run("overlapping dates map to ErrDatesUnavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		directory := mock_interfaces.NewMockIDirectoryRepository(ctrl)
		uc := NewBookingUseCase(repo, directory, nil, nil, "usd")

		expectDirectoryLookups(directory)
		repo.EXPECT().CreateWithClaims(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Booking{}, interfaces.ErrDayClaimConflict)

		if _, err := uc.CreateBooking(context.Background(), validBookingInput(entities.PaymentMethodCOD)); !errors.Is(err, ErrDatesUnavailable) {
			t.Fatalf("expected ErrDatesUnavailable, got %v", err)
		}
	})

	t.Run("publish failure does not fail the booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		directory := mock_interfaces.NewMockIDirectoryRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewBookingUseCase(repo, directory, nil, notifier, "usd")

		expectDirectoryLookups(directory)
		repo.EXPECT().CreateWithClaims(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Booking{}, nil)
		notifier.EXPECT().PublishBookingEvent(gomock.Any(), "booking.confirmed", gomock.Any()).Return(errors.New("broker down"))

		if _, err := uc.CreateBooking(context.Background(), validBookingInput(entities.PaymentMethodCOD)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBookingUseCase_CreateBooking_NewCard(t *testing.T) {
	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		directory := mock_interfaces.NewMockIDirectoryRepository(ctrl)
		uc := NewBookingUseCase(nil, directory, nil, nil, "usd")

		expectDirectoryLookups(directory)

		if _, err := uc.CreateBooking(context.Background(), validBookingInput(entities.PaymentMethodStripe)); !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("pending booking with client secret", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		directory := mock_interfaces.NewMockIDirectoryRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBookingUseCase(repo, directory, gateway, nil, "usd")

		expectDirectoryLookups(directory)
		gateway.EXPECT().CreateIntent(gomock.Any(), int64(14999), "usd", map[string]string{"userId": "user-1", "listingId": "lst-1"}).
			Return(interfaces.PaymentIntentResult{IntentID: "pi_1", ClientSecret: "pi_1_secret"}, nil)
		repo.EXPECT().CreateWithClaims(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Booking, claimDays []string) (entities.Booking, error) {
				if b.Status != entities.BookingStatusPending {
					t.Fatalf("expected pending booking, got %s", b.Status)
				}
				if b.PaymentIntentID != "pi_1" {
					t.Fatalf("expected intent pi_1, got %s", b.PaymentIntentID)
				}
				if len(claimDays) != 3 {
					t.Fatalf("expected 3 claim days, got %v", claimDays)
				}
				return b, nil
			})

		result, err := uc.CreateBooking(context.Background(), validBookingInput(entities.PaymentMethodStripe))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Status != entities.BookingStatusPending {
			t.Fatalf("expected pending, got %s", result.Status)
		}
		if result.ClientSecret != "pi_1_secret" {
			t.Fatalf("expected client secret, got %q", result.ClientSecret)
		}
	})

	t.Run("intent creation failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		directory := mock_interfaces.NewMockIDirectoryRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBookingUseCase(nil, directory, gateway, nil, "usd")

		expectDirectoryLookups(directory)
		gateway.EXPECT().CreateIntent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(interfaces.PaymentIntentResult{}, errors.New("processor unreachable"))

		if _, err := uc.CreateBooking(context.Background(), validBookingInput(entities.PaymentMethodStripe)); !errors.Is(err, ErrPaymentProcessing) {
			t.Fatalf("expected ErrPaymentProcessing, got %v", err)
		}
	})

	t.Run("duplicate intent maps to ErrDuplicatePaymentIntent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		directory := mock_interfaces.NewMockIDirectoryRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBookingUseCase(repo, directory, gateway, nil, "usd")

		expectDirectoryLookups(directory)
		gateway.EXPECT().CreateIntent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(interfaces.PaymentIntentResult{IntentID: "pi_1"}, nil)
		repo.EXPECT().CreateWithClaims(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Booking{}, interfaces.ErrIntentClaimConflict)

		if _, err := uc.CreateBooking(context.Background(), validBookingInput(entities.PaymentMethodStripe)); !errors.Is(err, ErrDuplicatePaymentIntent) {
			t.Fatalf("expected ErrDuplicatePaymentIntent, got %v", err)
		}
	})
}

func TestBookingUseCase_CreateBooking_SavedCard(t *testing.T) {
	savedCardInput := func() CreateBookingInput {
		in := validBookingInput(entities.PaymentMethodStripe)
		in.PaymentMethodID = "pm_1"
		return in
	}

	t.Run("foreign payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		directory := mock_interfaces.NewMockIDirectoryRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBookingUseCase(nil, directory, gateway, nil, "usd")

		expectDirectoryLookups(directory)
		gateway.EXPECT().VerifyMethodOwner(gomock.Any(), "pm_1", "cus_1").Return(interfaces.ErrForeignPaymentMethod)

		if _, err := uc.CreateBooking(context.Background(), savedCardInput()); !errors.Is(err, interfaces.ErrForeignPaymentMethod) {
			t.Fatalf("expected ErrForeignPaymentMethod, got %v", err)
		}
	})

	t.Run("synchronous success confirms", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		directory := mock_interfaces.NewMockIDirectoryRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBookingUseCase(repo, directory, gateway, nil, "usd")

		expectDirectoryLookups(directory)
		gateway.EXPECT().VerifyMethodOwner(gomock.Any(), "pm_1", "cus_1").Return(nil)
		gateway.EXPECT().ChargeSavedMethod(gomock.Any(), int64(14999), "usd", "pm_1", "cus_1", gomock.Any()).
			Return(interfaces.PaymentIntentResult{IntentID: "pi_2", Succeeded: true}, nil)
		repo.EXPECT().CreateWithClaims(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Booking, _ []string) (entities.Booking, error) {
				if b.Status != entities.BookingStatusConfirmed {
					t.Fatalf("expected confirmed booking, got %s", b.Status)
				}
				return b, nil
			})

		result, err := uc.CreateBooking(context.Background(), savedCardInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Status != entities.BookingStatusConfirmed {
			t.Fatalf("expected confirmed, got %s", result.Status)
		}
	})

	t.Run("step-up authentication stays pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		directory := mock_interfaces.NewMockIDirectoryRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBookingUseCase(repo, directory, gateway, nil, "usd")

		expectDirectoryLookups(directory)
		gateway.EXPECT().VerifyMethodOwner(gomock.Any(), "pm_1", "cus_1").Return(nil)
		gateway.EXPECT().ChargeSavedMethod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(interfaces.PaymentIntentResult{IntentID: "pi_3", ClientSecret: "pi_3_secret", RequiresAction: true}, nil)
		repo.EXPECT().CreateWithClaims(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Booking, _ []string) (entities.Booking, error) {
				return b, nil
			})

		result, err := uc.CreateBooking(context.Background(), savedCardInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Status != entities.BookingStatusPending {
			t.Fatalf("expected pending, got %s", result.Status)
		}
		if !result.RequiresAction || result.ClientSecret != "pi_3_secret" {
			t.Fatalf("expected step-up result, got %+v", result)
		}
	})

	t.Run("decline persists a failed booking without claims", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		directory := mock_interfaces.NewMockIDirectoryRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBookingUseCase(repo, directory, gateway, nil, "usd")

		expectDirectoryLookups(directory)
		gateway.EXPECT().VerifyMethodOwner(gomock.Any(), "pm_1", "cus_1").Return(nil)
		gateway.EXPECT().ChargeSavedMethod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(interfaces.PaymentIntentResult{IntentID: "pi_4"}, interfaces.ErrCardDeclined)
		repo.EXPECT().CreateWithClaims(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, b entities.Booking, _ []string) (entities.Booking, error) {
				if b.Status != entities.BookingStatusFailed {
					t.Fatalf("expected failed booking, got %s", b.Status)
				}
				if b.PaymentIntentID != "pi_4" {
					t.Fatalf("expected intent pi_4, got %s", b.PaymentIntentID)
				}
				return b, nil
			})

		if _, err := uc.CreateBooking(context.Background(), savedCardInput()); !errors.Is(err, interfaces.ErrCardDeclined) {
			t.Fatalf("expected ErrCardDeclined, got %v", err)
		}
	})

	t.Run("other gateway failures map to ErrPaymentProcessing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		directory := mock_interfaces.NewMockIDirectoryRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBookingUseCase(nil, directory, gateway, nil, "usd")

		expectDirectoryLookups(directory)
		gateway.EXPECT().VerifyMethodOwner(gomock.Any(), "pm_1", "cus_1").Return(nil)
		gateway.EXPECT().ChargeSavedMethod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(interfaces.PaymentIntentResult{}, errors.New("timeout"))

		if _, err := uc.CreateBooking(context.Background(), savedCardInput()); !errors.Is(err, ErrPaymentProcessing) {
			t.Fatalf("expected ErrPaymentProcessing, got %v", err)
		}
	})
}

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		price float64
		want  int64
	}{
		{price: 149.99, want: 14999},
		{price: 0.1, want: 10},
		{price: 19.999, want: 2000},
		{price: 1200, want: 120000},
	}
	for _, tc := range cases {
		if got := minorUnits(tc.price); got != tc.want {
			t.Fatalf("minorUnits(%v) = %d, want %d", tc.price, got, tc.want)
		}
	}
}
