package domain

import "github.com/google/uuid"

// AvailabilityEntry is one cell of the precomputed weekly grid: whether a
// room is free at a given 5-minute block of a school weekday. College,
// building, and room name are denormalized so filtered scans never join.
// Entries are purely derived and rebuilt wholesale, never hand-edited.
type AvailabilityEntry struct {
	RoomID      uuid.UUID
	RoomName    string
	College     string
	Building    string
	Weekday     int
	MinuteBlock int
	Available   bool
}

// AvailableRoom is one row of a query result: a currently free room and the
// time it stays free until.
type AvailableRoom struct {
	RoomID         uuid.UUID
	Name           string
	College        string
	Building       string
	AvailableUntil TimeOfDay
}

// AvailabilityResult is the query engine's answer. Closed is the
// out-of-hours sentinel: it signals "everything is closed", which is
// distinct from an empty room list during opening hours.
type AvailabilityResult struct {
	Closed bool
	Rooms  []AvailableRoom
}

// ImportReport summarises a schedule import batch. Processed counts rows
// that made it into the store; malformed rows are skipped and only counted
// in Total. Entries is the size of the availability grid rebuilt afterwards.
type ImportReport struct {
	Total     int
	Processed int
	Entries   int
}
