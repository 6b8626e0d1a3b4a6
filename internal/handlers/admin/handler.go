package admin

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wyovotewatch/district-alerts-api/internal/metrics"
	"github.com/wyovotewatch/district-alerts-api/internal/models"
	"github.com/wyovotewatch/district-alerts-api/internal/roster"
)

const timeoutDuration = 30 * time.Second

type legislatorStore interface {
	ReplaceAll(ctx context.Context, legislators []models.Legislator) (int, error)
	ListActive(ctx context.Context, canonicalCodes []string) ([]models.Legislator, error)
}

type Handler struct {
	Store legislatorStore
	m     *metrics.Metrics
}

func NewHandler(store legislatorStore, m *metrics.Metrics) *Handler {
	return &Handler{Store: store, m: m}
}

// ImportLegislators
// @Summary Import the legislator roster
// @Description Replaces all legislator rows with the fixed session roster.
// @Tags admin
// @Success 200
// @Failure 500
// @Router /admin/legislators/import [post]
func (h *Handler) ImportLegislators(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
	defer cancel()

	imported, err := h.Store.ReplaceAll(ctx, roster.Wyoming)
	if err != nil {
		log.Printf("Failed to import legislators: %s", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import legislators"})
		return
	}

	h.m.LegislatorsImported.Add(float64(imported))
	c.JSON(http.StatusOK, gin.H{"success": true, "imported": imported})
}

// ListLegislators
// @Summary List active legislators
// @Description Lists active legislators, optionally filtered by canonical district codes.
// @Tags legislators
// @Param districts query string false "Comma-separated canonical codes, e.g. H07,S04"
// @Success 200 {array} models.Legislator
// @Failure 500
// @Router /legislators [get]
func (h *Handler) ListLegislators(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
	defer cancel()

	var codes []string
	if raw := c.Query("districts"); raw != "" {
		for _, code := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(code); trimmed != "" {
				codes = append(codes, strings.ToUpper(trimmed))
			}
		}
	}

	legislators, err := h.Store.ListActive(ctx, codes)
	if err != nil {
		log.Printf("Failed to list legislators: %s", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list legislators"})
		return
	}
	if legislators == nil {
		legislators = []models.Legislator{}
	}

	c.JSON(http.StatusOK, legislators)
}
