package service

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/jszwec/csvutil"

	"github.com/opencampus/roomfinder/internal/domain"
	"github.com/opencampus/roomfinder/internal/repository"
	"github.com/opencampus/roomfinder/internal/schedule"
	"github.com/opencampus/roomfinder/lib/logger/sl"
)

type ImportService struct {
	rooms repository.RoomRepository
	slots repository.SlotRepository
	dumps repository.DumpRepository
	index IndexInteractor
	log   *slog.Logger
}

func NewImportService(rooms repository.RoomRepository, slots repository.SlotRepository, dumps repository.DumpRepository, index IndexInteractor, log *slog.Logger) *ImportService {
	if log == nil {
		log = slog.Default()
	}
	return &ImportService{
		rooms: rooms,
		slots: slots,
		dumps: dumps,
		index: index,
		log:   log,
	}
}

// ImportRows normalizes a batch of raw schedule rows into rooms and
// recurring slots. A malformed row is logged and skipped; the batch always
// runs to completion. After the batch the availability grid is rebuilt.
func (s *ImportService) ImportRows(ctx context.Context, rows []domain.ScheduleRow) (*domain.ImportReport, error) {
	const op = "service.import.rows"
	log := s.log.With(slog.String("op", op))

	report := &domain.ImportReport{Total: len(rows)}
	for i := range rows {
		row := rows[i]

		if err := s.dumps.Archive(ctx, row); err != nil {
			log.Warn("failed to archive raw row", "row", i, sl.Err(err))
		}

		if err := s.importRow(ctx, row); err != nil {
			var formatErr *domain.FormatError
			if errors.As(err, &formatErr) {
				log.Warn("skipping malformed row",
					"row", i,
					"building", row.Building,
					"room", row.Room,
					sl.Err(err),
				)
				continue
			}
			return nil, err
		}
		report.Processed++
	}

	entries, err := s.index.Rebuild(ctx)
	if err != nil {
		return nil, err
	}
	report.Entries = entries

	log.Info("import finished",
		"total", report.Total,
		"processed", report.Processed,
		"entries", report.Entries,
	)
	return report, nil
}

// ImportCSV decodes a collector CSV export and imports it as a row batch.
// A structurally broken record is logged and skipped like any other malformed
// row; only a missing header fails the whole call.
func (s *ImportService) ImportCSV(ctx context.Context, r io.Reader) (*domain.ImportReport, error) {
	const op = "service.import.csv"
	log := s.log.With(slog.String("op", op))

	dec, err := csvutil.NewDecoder(csv.NewReader(r))
	if err != nil {
		return nil, domain.NewFormatError("invalid csv header: %v", err)
	}

	var rows []domain.ScheduleRow
	skipped := 0
	for {
		var row domain.ScheduleRow
		if err := dec.Decode(&row); err == io.EOF {
			break
		} else if err != nil {
			log.Warn("skipping malformed csv record", sl.Err(err))
			skipped++
			continue
		}
		rows = append(rows, row)
	}

	report, err := s.ImportRows(ctx, rows)
	if err != nil {
		return nil, err
	}
	report.Total += skipped
	return report, nil
}

func (s *ImportService) importRow(ctx context.Context, row domain.ScheduleRow) error {
	college := strings.TrimSpace(row.CollegeName)
	building := strings.TrimSpace(row.Building)
	name := strings.TrimSpace(row.Room)
	if college == "" || building == "" || name == "" {
		return domain.NewFormatError("missing room identity: college %q, building %q, room %q",
			row.CollegeName, row.Building, row.Room)
	}

	start, err := schedule.ParseClockTime(row.StartTime)
	if err != nil {
		return err
	}
	end, err := schedule.ParseClockTime(row.EndTime)
	if err != nil {
		return err
	}
	if start >= end {
		return domain.NewFormatError("start time %s is not before end time %s", start, end)
	}

	validFrom, err := schedule.ParseDate(row.StartDate)
	if err != nil {
		return err
	}
	validTo, err := schedule.ParseDate(row.EndDate)
	if err != nil {
		return err
	}

	days := schedule.ParseDays(row.Days)
	if len(days) == 0 {
		return domain.NewFormatError("no recognised day tokens in %q", row.Days)
	}

	room, err := s.rooms.FindOrCreate(ctx, domain.NewRoom(college, building, name))
	if err != nil {
		return err
	}

	for _, day := range days {
		slot := &domain.RecurringSlot{
			RoomID:    room.ID,
			Day:       day,
			Start:     start,
			End:       end,
			ValidFrom: validFrom,
			ValidTo:   validTo,
		}
		if _, err := s.slots.Upsert(ctx, slot); err != nil {
			var integrityErr *domain.IntegrityError
			if errors.As(err, &integrityErr) {
				continue
			}
			return err
		}
	}
	return nil
}
