package subscription

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wyovotewatch/district-alerts-api/internal/metrics"
	"github.com/wyovotewatch/district-alerts-api/internal/models"
	"github.com/wyovotewatch/district-alerts-api/internal/services/subscriptions"
)

const timeoutDuration = 10 * time.Second

type subscriber interface {
	Subscribe(ctx context.Context, req models.SubscribeRequest) (models.SubscriptionResult, error)
}

type Handler struct {
	Service subscriber
	m       *metrics.Metrics
}

func NewHandler(svc subscriber, m *metrics.Metrics) *Handler {
	return &Handler{Service: svc, m: m}
}

// Subscribe
// @Summary Subscribe to vote alerts
// @Description Creates a subscriber with district memberships and notification preferences.
// @Tags subscription
// @Accept application/json
// @Param request body models.SubscribeRequest true "Contact info, canonical district codes, delivery mode"
// @Success 200
// @Failure 400
// @Failure 500
// @Router /subscribe [post]
func (h *Handler) Subscribe(c *gin.Context) {
	var req models.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Failed to bind subscribe request: %s", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
	defer cancel()

	result, err := h.Service.Subscribe(ctx, req)
	if err != nil {
		if msg, ok := validationMessage(err); ok {
			h.m.BusinessErrors.WithLabelValues("subscribe_validation", "warning").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		log.Printf("Failed to subscribe with that error: %s", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create subscription"})
		return
	}

	h.m.SubscriptionsCreated.WithLabelValues(contactChannel(req)).Inc()
	c.JSON(http.StatusOK, gin.H{
		"success":             true,
		"subscriber_id":       result.SubscriberID,
		"confirmation_needed": result.ConfirmationNeeded,
	})
}

func validationMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, subscriptions.ErrMissingContact):
		return "Email or phone required", true
	case errors.Is(err, subscriptions.ErrConsentRequired):
		return "Consent required", true
	case errors.Is(err, subscriptions.ErrNoDistrictsSelected):
		return "At least one district required", true
	case errors.Is(err, subscriptions.ErrUnsupportedRegion):
		return "A Wyoming (307) phone number is required for SMS alerts", true
	case errors.Is(err, subscriptions.ErrInvalidDistrict):
		return "Unrecognized district code", true
	default:
		return "", false
	}
}

func contactChannel(req models.SubscribeRequest) string {
	switch {
	case req.Email != "" && req.Phone != "":
		return "both"
	case req.Phone != "":
		return models.ChannelSMS
	default:
		return models.ChannelEmail
	}
}
