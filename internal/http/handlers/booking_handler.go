// README: Booking handlers drive one session through pickup, destination, tier and confirm.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skytaxi/internal/modules/booking"
	"skytaxi/internal/modules/pricing"
	"skytaxi/internal/types"
)

type BookingHandler struct {
	booking *booking.Service
	pricing *pricing.Service
}

func NewBookingHandler(bookingSvc *booking.Service, pricingSvc *pricing.Service) *BookingHandler {
	return &BookingHandler{booking: bookingSvc, pricing: pricingSvc}
}

type pointReq struct {
	Lat *float64 `json:"lat" binding:"required"`
	Lng *float64 `json:"lng" binding:"required"`
}

type tierReq struct {
	TierID string `json:"tier_id" binding:"required"`
}

func (h *BookingHandler) Start(c *gin.Context) {
	sess, err := h.booking.Start(c.Request.Context())
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, newBookingView(sess, h.pricing.Money))
}

func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	sess, err := h.booking.Get(c.Request.Context(), id)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, newBookingView(sess, h.pricing.Money))
}

func (h *BookingHandler) Pickup(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	p, ok := bindPoint(c)
	if !ok {
		return
	}
	sess, err := h.booking.SelectPickup(c.Request.Context(), id, p)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, newBookingView(sess, h.pricing.Money))
}

func (h *BookingHandler) Destination(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	p, ok := bindPoint(c)
	if !ok {
		return
	}
	sess, err := h.booking.SelectDestination(c.Request.Context(), id, p)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, newBookingView(sess, h.pricing.Money))
}

func (h *BookingHandler) Tier(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req tierReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "missing tier_id")
		return
	}
	sess, err := h.booking.SelectTier(c.Request.Context(), id, req.TierID)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, newBookingView(sess, h.pricing.Money))
}

// Quotes prices the session's distance for every tier, for the tier selector.
func (h *BookingHandler) Quotes(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	sess, err := h.booking.Get(c.Request.Context(), id)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	if !sess.Booking.HasDistance() {
		writeError(c, http.StatusConflict, "destination not selected")
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{
		"distance_km": sess.Booking.DistanceKm,
		"quotes":      h.pricing.Quote(c.Request.Context(), sess.Booking.DistanceKm),
	})
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	conf, err := h.booking.Confirm(c.Request.Context(), id)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, newConfirmationView(conf))
}

func (h *BookingHandler) Reset(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	sess, err := h.booking.Reset(c.Request.Context(), id)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, newBookingView(sess, h.pricing.Money))
}

func (h *BookingHandler) End(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	if err := h.booking.End(c.Request.Context(), id); err != nil {
		writeBookingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func sessionID(c *gin.Context) (types.ID, bool) {
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing booking id")
		return "", false
	}
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid booking id")
		return "", false
	}
	return types.ID(id), true
}

func bindPoint(c *gin.Context) (types.Point, bool) {
	var req pointReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "lat and lng are required")
		return types.Point{}, false
	}
	return types.Point{Lat: *req.Lat, Lng: *req.Lng}, true
}
