package usecase

import (
	"context"
	"log"
	"time"

	"tripmarket/internal/domain/entities"
	"tripmarket/internal/usecase/interfaces"
)

const (
	eventPaymentSucceeded      = "payment_intent.succeeded"
	eventPaymentFailed         = "payment_intent.payment_failed"
	eventPaymentRequiresAction = "payment_intent.requires_action"
)

// IWebhookUseCase reconciles bookings against asynchronous processor events.
//
// A nil return acknowledges the delivery; the processor stops retrying. Only
// ErrInvalidSignature (reject outright) and genuine store faults (invite a
// retry) propagate. A missing booking for a verified event is acknowledged:
// failing it would make the processor retry forever over an event that may
// simply not belong to us.

type IWebhookUseCase interface {
	HandleProcessorEvent(ctx context.Context, payload []byte, signatureHeader string) error
}

type WebhookUseCase struct {
	repo     interfaces.IBookingRepository
	verifier interfaces.IWebhookVerifier
	notifier interfaces.INotifier
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(repo interfaces.IBookingRepository, verifier interfaces.IWebhookVerifier, notifier interfaces.INotifier) *WebhookUseCase {
	return &WebhookUseCase{repo: repo, verifier: verifier, notifier: notifier}
}

func (u *WebhookUseCase) HandleProcessorEvent(ctx context.Context, payload []byte, signatureHeader string) error {
	ev, err := u.verifier.VerifyAndParse(payload, signatureHeader)
	if err != nil {
		log.Printf("[webhook][usecase] signature verification failed err=%v", err)
		return err
	}
	log.Printf("[webhook][usecase] event received type=%s intent_id=%s", ev.Type, ev.IntentID)

	switch ev.Type {
	case eventPaymentSucceeded:
		return u.confirm(ctx, ev.IntentID)
	case eventPaymentFailed:
		return u.fail(ctx, ev.IntentID)
	case eventPaymentRequiresAction:
		// Informational: the booking already sits in pending.
		return nil
	default:
		log.Printf("[webhook][usecase] ignoring event type=%s", ev.Type)
		return nil
	}
}

func (u *WebhookUseCase) confirm(ctx context.Context, intentID string) error {
	b, err := u.repo.UpdateStatusByPaymentIntentID(ctx, intentID, entities.BookingStatusConfirmed)
	if err != nil {
		return err
	}
	if b.ID == "" {
		log.Printf("[webhook][usecase] no booking for intent_id=%s; acknowledging", intentID)
		return nil
	}
	log.Printf("[webhook][usecase] booking confirmed booking_id=%s intent_id=%s", b.ID, intentID)

	if u.notifier != nil {
		ev := interfaces.BookingEvent{
			Event:      "booking.confirmed",
			OccurredAt: time.Now().UTC().Format(time.RFC3339),
			BookingID:  b.ID,
			UserID:     b.UserID,
			ListingID:  b.ListingID,
			Status:     string(b.Status),
		}
		if err := u.notifier.PublishBookingEvent(ctx, "booking.confirmed", ev); err != nil {
			log.Printf("[webhook][usecase] publish booking.confirmed failed booking_id=%s err=%v", b.ID, err)
		}
	}
	return nil
}

func (u *WebhookUseCase) fail(ctx context.Context, intentID string) error {
	b, err := u.repo.UpdateStatusByPaymentIntentID(ctx, intentID, entities.BookingStatusFailed)
	if err != nil {
		return err
	}
	if b.ID == "" {
		log.Printf("[webhook][usecase] no booking for intent_id=%s; acknowledging", intentID)
		return nil
	}
	log.Printf("[webhook][usecase] booking failed booking_id=%s intent_id=%s", b.ID, intentID)

	// Reopen the stay dates; a failed booking no longer blocks the calendar.
	if err := u.repo.ReleaseClaims(ctx, b); err != nil {
		log.Printf("[webhook][usecase] releasing claims failed booking_id=%s err=%v", b.ID, err)
	}
	return nil
}
