// README: Catalog handlers for tiers, distance quotes and the map defaults.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skytaxi/internal/config"
	"skytaxi/internal/modules/pricing"
)

type CatalogHandler struct {
	pricing *pricing.Service
	mapCfg  config.MapConfig
}

func NewCatalogHandler(pricingSvc *pricing.Service, mapCfg config.MapConfig) *CatalogHandler {
	return &CatalogHandler{pricing: pricingSvc, mapCfg: mapCfg}
}

func (h *CatalogHandler) Tiers(c *gin.Context) {
	writeJSON(c, http.StatusOK, map[string]any{
		"currency": h.pricing.Currency(),
		"tiers":    h.pricing.Catalog().All(),
	})
}

func (h *CatalogHandler) Quotes(c *gin.Context) {
	raw := c.Query("distance_km")
	if raw == "" {
		writeError(c, http.StatusBadRequest, "missing distance_km")
		return
	}
	d, err := strconv.ParseFloat(raw, 64)
	if err != nil || d < 0 {
		writeError(c, http.StatusBadRequest, "distance_km must be a non-negative number")
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{
		"distance_km": d,
		"quotes":      h.pricing.Quote(c.Request.Context(), d),
	})
}

func (h *CatalogHandler) Map(c *gin.Context) {
	writeJSON(c, http.StatusOK, map[string]any{
		"center": map[string]float64{"lat": h.mapCfg.CenterLat, "lng": h.mapCfg.CenterLng},
		"zoom":   h.mapCfg.Zoom,
	})
}
