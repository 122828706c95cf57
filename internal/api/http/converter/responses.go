package converter

import (
	"time"

	"github.com/google/uuid"

	"github.com/opencampus/roomfinder/internal/domain"
)

type RoomResponse struct {
	ID       uuid.UUID `json:"id"`
	College  string    `json:"college"`
	Building string    `json:"building"`
	Name     string    `json:"name"`
}

type AvailableRoomResponse struct {
	ID             uuid.UUID `json:"id"`
	College        string    `json:"college"`
	Building       string    `json:"building"`
	Name           string    `json:"name"`
	AvailableUntil string    `json:"available_until"`
}

type AvailabilityResponse struct {
	Closed bool                    `json:"closed"`
	Rooms  []AvailableRoomResponse `json:"rooms"`
}

type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	RoomID      uuid.UUID `json:"room_id"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	RequesterID uuid.UUID `json:"requester_id"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

type BookingOverviewResponse struct {
	Current  []BookingResponse `json:"current"`
	Upcoming []BookingResponse `json:"upcoming"`
	Past     []BookingResponse `json:"past"`
}

type ImportReportResponse struct {
	Total     int `json:"total"`
	Processed int `json:"processed"`
	Entries   int `json:"entries"`
}

func RoomToApi(r *domain.Room) RoomResponse {
	return RoomResponse{
		ID:       r.ID,
		College:  r.College,
		Building: r.Building,
		Name:     r.Name,
	}
}

func RoomsToApi(rooms []*domain.Room) []RoomResponse {
	result := make([]RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		result = append(result, RoomToApi(room))
	}
	return result
}

func AvailabilityToApi(res *domain.AvailabilityResult) AvailabilityResponse {
	rooms := make([]AvailableRoomResponse, 0, len(res.Rooms))
	for _, room := range res.Rooms {
		rooms = append(rooms, AvailableRoomResponse{
			ID:             room.RoomID,
			College:        room.College,
			Building:       room.Building,
			Name:           room.Name,
			AvailableUntil: room.AvailableUntil.String(),
		})
	}
	return AvailabilityResponse{Closed: res.Closed, Rooms: rooms}
}

func BookingToApi(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		RoomID:      b.RoomID,
		Date:        b.Date.Format(time.DateOnly),
		StartTime:   b.Start.String(),
		EndTime:     b.End.String(),
		RequesterID: b.RequesterID,
		Active:      b.Active,
		CreatedAt:   b.CreatedAt,
	}
}

func BookingsToApi(bookings []*domain.Booking) []BookingResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		result = append(result, BookingToApi(booking))
	}
	return result
}

func OverviewToApi(o *domain.BookingOverview) BookingOverviewResponse {
	return BookingOverviewResponse{
		Current:  BookingsToApi(o.Current),
		Upcoming: BookingsToApi(o.Upcoming),
		Past:     BookingsToApi(o.Past),
	}
}

func ReportToApi(r *domain.ImportReport) ImportReportResponse {
	return ImportReportResponse{
		Total:     r.Total,
		Processed: r.Processed,
		Entries:   r.Entries,
	}
}
