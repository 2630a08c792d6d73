package maintenance

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/keeslam/CarRentalManager-sub004/pkg/common"
)

// Handler handles HTTP requests for the maintenance calendar
type Handler struct {
	service *Service
}

// NewHandler creates a new maintenance handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the maintenance endpoints onto the router
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1/maintenance")
	{
		api.GET("/events", h.ListEvents)
		api.GET("/events/:date", h.EventsForDate)
	}
}

// ListEvents returns the full maintenance event set for the fleet
// GET /api/v1/maintenance/events
func (h *Handler) ListEvents(c *gin.Context) {
	events, err := h.service.CalendarEvents(c.Request.Context())
	if common.HandleServiceError(c, err, "failed to generate maintenance events") {
		return
	}

	common.SuccessResponseWithMeta(c, events, &common.Meta{Count: len(events)})
}

// EventsForDate returns the events visible on one calendar day
// GET /api/v1/maintenance/events/:date?q=&vehicle_type=&event_type=
func (h *Handler) EventsForDate(c *gin.Context) {
	day, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	filter := EventFilter{
		Query:       c.Query("q"),
		VehicleType: c.Query("vehicle_type"),
		EventType:   EventType(c.Query("event_type")),
	}

	events, err := h.service.EventsForDate(c.Request.Context(), day, filter)
	if common.HandleServiceError(c, err, "failed to generate maintenance events") {
		return
	}

	common.SuccessResponseWithMeta(c, events, &common.Meta{Count: len(events)})
}
