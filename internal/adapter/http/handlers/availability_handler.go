package handlers

import (
	"errors"
	"net/http"

	request "tripmarket/internal/adapter/http/dto/request"
	response "tripmarket/internal/adapter/http/dto/response"
	"tripmarket/internal/usecase"
	"tripmarket/pkg"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler exposes the unavailable-dates index and the vendor
// blocked-range calendar.

type AvailabilityHandler struct {
	usecase usecase.IAvailabilityUseCase
}

func NewAvailabilityHandler(uc usecase.IAvailabilityUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{usecase: uc}
}

func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	listingID := c.Param("listing_id")
	dates, err := h.usecase.ComputeUnavailableDates(c.Request.Context(), listingID)
	if err != nil {
		appErr := mapAvailabilityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUnavailableDates(listingID, dates))
}

func (h *AvailabilityHandler) CreateBlockedRange(c *gin.Context) {
	var payload request.BlockedRangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	br, err := h.usecase.AddBlockedRange(c.Request.Context(), c.Param("listing_id"), payload.StartDate, payload.EndDate)
	if err != nil {
		appErr := mapAvailabilityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromBlockedRange(br))
}

func (h *AvailabilityHandler) ListBlockedRanges(c *gin.Context) {
	ranges, err := h.usecase.ListBlockedRanges(c.Request.Context(), c.Param("listing_id"))
	if err != nil {
		appErr := mapAvailabilityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBlockedRanges(ranges))
}

func mapAvailabilityError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidListingID), errors.Is(err, usecase.ErrInvalidDateRange):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrListingNotFound):
		return pkg.NewDomainErrorSimple("LISTING_NOT_FOUND", "Listing not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
