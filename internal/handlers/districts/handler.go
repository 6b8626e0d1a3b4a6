package districts

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wyovotewatch/district-alerts-api/internal/metrics"
	"github.com/wyovotewatch/district-alerts-api/internal/models"
	serviceDistricts "github.com/wyovotewatch/district-alerts-api/internal/services/districts"
)

const timeoutDuration = 10 * time.Second

type resolver interface {
	Resolve(ctx context.Context, req models.LookupRequest) (models.ResolveResult, error)
}

type Handler struct {
	Service resolver
	m       *metrics.Metrics
}

func NewHandler(svc resolver, m *metrics.Metrics) *Handler {
	return &Handler{Service: svc, m: m}
}

// Lookup
// @Summary Resolve legislative districts
// @Description Resolves a Wyoming address or ZIP code into exact and possible house/senate districts.
// @Tags districts
// @Accept application/json
// @Param request body models.LookupRequest true "Address or ZIP (exactly one expected)"
// @Success 200 {object} models.ResolveResult
// @Failure 400
// @Failure 500
// @Router /districts/lookup [post]
func (h *Handler) Lookup(c *gin.Context) {
	var req models.LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Failed to bind lookup request: %s", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Address or ZIP required"})
		return
	}
	if req.Address == "" && req.Zip == "" {
		h.m.LookupsTotal.WithLabelValues("rejected").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Address or ZIP required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
	defer cancel()

	result, err := h.Service.Resolve(ctx, req)
	if err != nil {
		if errors.Is(err, serviceDistricts.ErrInvalidRegion) {
			h.m.LookupsTotal.WithLabelValues("rejected").Inc()
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "This service is only available for Wyoming addresses and ZIP codes (82xxx)",
			})
			return
		}
		log.Printf("Failed to resolve districts: %s", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.m.LookupsTotal.WithLabelValues(outcomeOf(result)).Inc()
	c.JSON(http.StatusOK, result)
}

func outcomeOf(result models.ResolveResult) string {
	switch {
	case len(result.Exact) > 0:
		return "exact"
	case len(result.Possible) > 0:
		return "possible"
	default:
		return "none"
	}
}
