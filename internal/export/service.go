package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/prepsportshq/preps-extract/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	players repository.PlayerRepository
	games   repository.GameRepository
	logger  *slog.Logger
}

func NewService(players repository.PlayerRepository, games repository.GameRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{players: players, games: games, logger: logger}
}

// RosterXLSX returns an XLSX workbook (as bytes) of one school's roster for
// the given sport/gender/season.
func (s *Service) RosterXLSX(ctx context.Context, schoolID uuid.UUID, sport, gender, season string) ([]byte, error) {
	start := time.Now()

	players, err := s.players.ListRoster(ctx, schoolID, sport, gender, season)
	if err != nil {
		return nil, fmt.Errorf("query roster: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Roster"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Jersey",
		"Last Name",
		"First Name",
		"Position",
		"Grade",
		"Height",
		"Weight",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, p := range players {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, p.JerseyNumber)
		write(2, p.LastName)
		write(3, p.FirstName)
		write(4, p.Position)
		if p.Grade != nil {
			write(5, *p.Grade)
		}
		if p.HeightFeet != nil && p.HeightInches != nil {
			write(6, fmt.Sprintf("%d'%d\"", *p.HeightFeet, *p.HeightInches))
		}
		if p.Weight != nil {
			write(7, *p.Weight)
		}

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 8)
	_ = f.SetColWidth(sheet, "B", "C", 18)
	_ = f.SetColWidth(sheet, "D", "D", 10)
	_ = f.SetColWidth(sheet, "E", "E", 12)
	_ = f.SetColWidth(sheet, "F", "G", 10)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.roster.ok",
		"school_id", schoolID.String(),
		"season", season,
		"rows", len(players),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// ScheduleXLSX returns an XLSX workbook (as bytes) of one school's schedule
// for the given sport/gender/season, ordered by date.
func (s *Service) ScheduleXLSX(ctx context.Context, schoolID uuid.UUID, sport, gender, season string) ([]byte, error) {
	start := time.Now()

	games, err := s.games.ListSeason(ctx, schoolID, sport, gender, season)
	if err != nil {
		return nil, fmt.Errorf("query schedule: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Schedule"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Date",
		"Time",
		"Opponent",
		"H/A",
		"Conference",
		"Location",
		"Result",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, g := range games {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, g.Date.Format("2006-01-02"))
		write(2, g.Time)
		write(3, g.Opponent)
		if g.IsHome {
			write(4, "H")
		} else {
			write(4, "A")
		}
		if g.IsConference {
			write(5, "Y")
		}
		write(6, g.Location)
		if g.HomeScore != nil && g.AwayScore != nil {
			write(7, fmt.Sprintf("%d-%d", *g.HomeScore, *g.AwayScore))
		}

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 12)
	_ = f.SetColWidth(sheet, "B", "B", 10)
	_ = f.SetColWidth(sheet, "C", "C", 28)
	_ = f.SetColWidth(sheet, "D", "E", 10)
	_ = f.SetColWidth(sheet, "F", "F", 28)
	_ = f.SetColWidth(sheet, "G", "G", 10)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.schedule.ok",
		"school_id", schoolID.String(),
		"season", season,
		"rows", len(games),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
