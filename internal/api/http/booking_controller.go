package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/opencampus/roomfinder/internal/api/http/converter"
	"github.com/opencampus/roomfinder/internal/domain"
	"github.com/opencampus/roomfinder/internal/service"
)

type BookingController struct {
	bookings service.BookingInteractor
}

func NewBookingController(bookings service.BookingInteractor) *BookingController {
	return &BookingController{bookings: bookings}
}

func (c *BookingController) CreateBooking(ctx *gin.Context) {
	type CreateBookingRequest struct {
		RoomID      string `json:"room_id" binding:"required"`
		Date        string `json:"date" binding:"required"`
		StartTime   string `json:"start_time" binding:"required"`
		EndTime     string `json:"end_time" binding:"required"`
		RequesterID string `json:"requester_id" binding:"required"`
	}
	var req CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid room id"})
		return
	}
	requesterID, err := uuid.Parse(req.RequesterID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid requester id"})
		return
	}
	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected yyyy-mm-dd"})
		return
	}
	start, err := parseClock(req.StartTime)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_time, expected HH:MM"})
		return
	}
	end, err := parseClock(req.EndTime)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_time, expected HH:MM"})
		return
	}

	booking, err := c.bookings.Book(ctx.Request.Context(), roomID, date, start, end, requesterID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"booking": converter.BookingToApi(booking)})
}

func (c *BookingController) CancelBooking(ctx *gin.Context) {
	bookingID, err := uuid.Parse(ctx.Param("bookingID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	type CancelRequest struct {
		RequesterID string `json:"requester_id" binding:"required"`
	}
	var req CancelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	requesterID, err := uuid.Parse(req.RequesterID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid requester id"})
		return
	}

	if err := c.bookings.Cancel(ctx.Request.Context(), bookingID, requesterID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

func (c *BookingController) ListBookings(ctx *gin.Context) {
	requesterID, err := uuid.Parse(ctx.Query("requester_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid requester id"})
		return
	}

	var from, to *time.Time
	if raw := ctx.Query("from"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date, expected yyyy-mm-dd"})
			return
		}
		from = &parsed
	}
	if raw := ctx.Query("to"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date, expected yyyy-mm-dd"})
			return
		}
		to = &parsed
	}

	overview, err := c.bookings.Overview(ctx.Request.Context(), requesterID, from, to)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, converter.OverviewToApi(overview))
}

// parseClock parses the API's 24-hour "HH:MM" time-of-day form.
func parseClock(value string) (domain.TimeOfDay, error) {
	parts := strings.SplitN(strings.TrimSpace(value), ":", 2)
	if len(parts) != 2 {
		return 0, domain.NewFormatError("invalid time %q", value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, domain.NewFormatError("invalid time %q", value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, domain.NewFormatError("invalid time %q", value)
	}
	return domain.MinutesOfDay(hour, minute), nil
}
