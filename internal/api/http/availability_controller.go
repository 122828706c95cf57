package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/opencampus/roomfinder/internal/api/http/converter"
	"github.com/opencampus/roomfinder/internal/repository"
	"github.com/opencampus/roomfinder/internal/service"
)

type AvailabilityController struct {
	availability service.AvailabilityInteractor
	now          func() time.Time
}

func NewAvailabilityController(availability service.AvailabilityInteractor) *AvailabilityController {
	return &AvailabilityController{
		availability: availability,
		now:          time.Now,
	}
}

// AvailableRooms answers GET /api/rooms/available. The query instant comes
// from the `at` parameter; the server clock is only the fallback here at the
// adapter boundary, never inside the engine.
func (c *AvailabilityController) AvailableRooms(ctx *gin.Context) {
	at := c.now()
	if raw := ctx.Query("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid at timestamp, expected RFC3339"})
			return
		}
		at = parsed
	}

	filter := repository.RoomFilter{College: ctx.Query("college")}
	if building := ctx.Query("building"); building != "" {
		filter.Buildings = []string{building}
	}

	result, err := c.availability.AvailableRooms(ctx.Request.Context(), at, filter)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, converter.AvailabilityToApi(result))
}
