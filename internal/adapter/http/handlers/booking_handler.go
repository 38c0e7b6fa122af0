package handlers

import (
	"errors"
	"log"
	"net/http"

	request "tripmarket/internal/adapter/http/dto/request"
	response "tripmarket/internal/adapter/http/dto/response"
	"tripmarket/internal/domain/entities"
	"tripmarket/internal/usecase"
	"tripmarket/internal/usecase/interfaces"
	"tripmarket/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBookingPayload = pkg.NewDomainErrorSimple("INVALID_BOOKING_INPUT", "Invalid booking payload", http.StatusBadRequest)

// BookingHandler handles HTTP requests for booking creation and management.

type BookingHandler struct {
	bookings usecase.IBookingUseCase
	admin    usecase.IBookingAdminUseCase
}

func NewBookingHandler(bookings usecase.IBookingUseCase, admin usecase.IBookingAdminUseCase) *BookingHandler {
	return &BookingHandler{bookings: bookings, admin: admin}
}

// CreateBooking submits a booking intent. Card flows may return a client
// secret the browser still has to confirm with the payment processor.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var payload request.CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}
	log.Printf("[booking][handler] create start user_id=%s listing_id=%s", payload.UserID, payload.ListingID)

	result, err := h.bookings.CreateBooking(c.Request.Context(), usecase.CreateBookingInput{
		UserID:          payload.UserID,
		ListingID:       payload.ListingID,
		Details:         payload.ToDetails(),
		PaymentMethod:   entities.PaymentMethod(payload.PaymentMethod),
		PaymentMethodID: payload.PaymentMethodID,
	})
	if err != nil {
		log.Printf("[booking][handler] create failed user_id=%s err=%v", payload.UserID, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[booking][handler] create success booking_id=%s status=%s", result.BookingID, result.Status)

	c.JSON(http.StatusCreated, response.FromCreationResult(result))
}

// ListBookings returns every booking (admin only; enforced by route middleware).
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.admin.ListAll(c.Request.Context())
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBookings(bookings))
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.admin.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(b))
}

// OverrideBooking is the admin escape hatch: it edits fields directly,
// outside the payment-driven lifecycle.
func (h *BookingHandler) OverrideBooking(c *gin.Context) {
	var payload request.OverrideBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	status, method, details := payload.ToOverride()
	b, err := h.admin.Override(c.Request.Context(), c.Param("id"), status, method, details)
	if err != nil {
		log.Printf("[booking][handler] override failed booking_id=%s err=%v", c.Param("id"), err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(b))
}

func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	if err := h.admin.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// ListVendorBookings returns bookings on the vendor's own listings only.
func (h *BookingHandler) ListVendorBookings(c *gin.Context) {
	bookings, err := h.admin.ListForVendor(c.Request.Context(), c.Param("vendor_id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBookings(bookings))
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingBookingFields),
		errors.Is(err, usecase.ErrInvalidBookingDates),
		errors.Is(err, usecase.ErrInvalidGuests),
		errors.Is(err, usecase.ErrInvalidPrice),
		errors.Is(err, usecase.ErrInvalidOverride),
		errors.Is(err, usecase.ErrInvalidVendorID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", "Unsupported payment method", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrListingNotFound):
		return pkg.NewDomainErrorSimple("LISTING_NOT_FOUND", "Listing not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDatesUnavailable):
		return pkg.NewDomainErrorSimple("DATES_UNAVAILABLE", "Requested dates are no longer available", http.StatusConflict)
	case errors.Is(err, usecase.ErrDuplicatePaymentIntent):
		return pkg.NewDomainErrorSimple("DUPLICATE_PAYMENT_INTENT", "Payment intent already linked to a booking", http.StatusConflict)
	case errors.Is(err, interfaces.ErrForeignPaymentMethod):
		return pkg.NewDomainErrorSimple("FOREIGN_PAYMENT_METHOD", "Payment method does not belong to this user", http.StatusForbidden)
	case errors.Is(err, interfaces.ErrCardDeclined):
		return pkg.NewDomainErrorSimple("CARD_DECLINED", "Card was declined by the payment processor", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentProcessing):
		return pkg.NewDomainErrorSimple("PAYMENT_PROCESSING_FAILED", "Payment could not be processed", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Card payments are not available", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
