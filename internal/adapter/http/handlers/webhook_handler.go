package handlers

import (
	"errors"
	"log"
	"net/http"

	"tripmarket/internal/usecase"
	"tripmarket/internal/usecase/interfaces"
	"tripmarket/pkg"

	"github.com/gin-gonic/gin"
)

const signatureHeader = "Stripe-Signature"

// WebhookHandler is the dedicated ingress for processor events. It hands the
// raw, unparsed body to the reconciler: signature verification needs the
// exact bytes, so this route must never sit behind body-parsing middleware.

type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

func (h *WebhookHandler) HandleProcessorEvent(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		log.Printf("[webhook][handler] body read failed err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	err = h.usecase.HandleProcessorEvent(c.Request.Context(), payload, c.GetHeader(signatureHeader))
	if err != nil {
		if errors.Is(err, interfaces.ErrInvalidSignature) {
			appErr := pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Webhook signature verification failed", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		// Internal fault: answer 5xx so the processor redelivers.
		log.Printf("[webhook][handler] reconciliation failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
