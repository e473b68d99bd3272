// File: /services/import_service.go
package services

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"eventdesk-api/models"
	"eventdesk-api/repositories"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// Spreadsheet column names. The exporter's template header must stay in
// lockstep with these, see export_service.go.
var (
	RequiredColumns = []string{
		"Day",
		"Date",
		"Time",
		"Duration (minutes)",
		"Place",
		"Number of Participants",
	}
	OptionalColumns = []string{
		"Status",
		"Meeting Time",
		"Meeting Date",
		"Place of Meeting",
		"Vehicle",
		"Camera Man",
		"Participation Type",
		"Event Reason",
	}
)

// Error messages report document row numbers: data row i (1-indexed) sits
// below the header, so it is document row i+1.
const headerRowOffset = 1

// maxReportedErrors caps the error list in the import result; the total
// count is always reported.
const maxReportedErrors = 10

// ErrNotTabular marks a file that cannot be parsed as a spreadsheet.
var ErrNotTabular = errors.New("unable to read file as a spreadsheet")

// MissingColumnsError reports the exact required column headers absent from
// the uploaded document.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "missing required columns: " + strings.Join(e.Columns, ", ")
}

type ImportResult struct {
	ImportedCount int      `json:"imported_count"`
	TotalRows     int      `json:"total_rows"`
	Errors        []string `json:"errors"`
	ErrorCount    int      `json:"error_count"`
}

type ImportService struct {
	eventRepo    *repositories.EventRepository
	statsService *StatsService
}

func NewImportService(eventRepo *repositories.EventRepository, statsService *StatsService) *ImportService {
	return &ImportService{
		eventRepo:    eventRepo,
		statsService: statsService,
	}
}

// Import reads a spreadsheet of events and creates them on behalf of the
// importing user. Rows are validated independently: a bad row is reported
// and skipped, never aborting the batch. All rows that validated are
// committed in a single transaction; a store failure there voids the whole
// import.
func (s *ImportService) Import(file io.Reader, createdByID string) (*ImportResult, error) {
	workbook, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotTabular, err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNotTabular
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotTabular, err)
	}
	if len(rows) == 0 {
		return nil, &MissingColumnsError{Columns: RequiredColumns}
	}

	columns := make(map[string]int, len(rows[0]))
	for i, header := range rows[0] {
		columns[strings.TrimSpace(header)] = i
	}

	var missing []string
	for _, name := range RequiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	var (
		events    []models.Event
		rowErrors []string
	)

	for i, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}

		rowNum := i + 1 + headerRowOffset
		event, err := s.parseRow(row, columns, createdByID)
		if err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}
		events = append(events, event)
	}

	// One transaction for the whole batch: all validated rows or none
	if err := s.eventRepo.CreateBatch(events); err != nil {
		return nil, err
	}

	// Best effort: a failed refresh must not fail the import
	if _, err := s.statsService.Refresh(); err != nil {
		log.Printf("Warning: stats refresh after import failed: %v", err)
	}

	result := &ImportResult{
		ImportedCount: len(events),
		TotalRows:     len(events) + len(rowErrors),
		Errors:        rowErrors,
		ErrorCount:    len(rowErrors),
	}
	if len(result.Errors) > maxReportedErrors {
		result.Errors = result.Errors[:maxReportedErrors]
	}
	return result, nil
}

func (s *ImportService) parseRow(row []string, columns map[string]int, createdByID string) (models.Event, error) {
	cell := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	day := cell("Day")
	if day == "" {
		return models.Event{}, errors.New("Day is required")
	}

	place := cell("Place")
	if place == "" {
		return models.Event{}, errors.New("Place is required")
	}

	date, err := models.ParseDateOnly(cell("Date"))
	if err != nil {
		return models.Event{}, fmt.Errorf("Date: %v", err)
	}

	eventTime, err := models.ParseTimeOnly(cell("Time"))
	if err != nil {
		return models.Event{}, fmt.Errorf("Time: %v", err)
	}

	duration, err := parseNonNegativeInt(cell("Duration (minutes)"))
	if err != nil {
		return models.Event{}, fmt.Errorf("Duration (minutes): %v", err)
	}

	participants, err := parseNonNegativeInt(cell("Number of Participants"))
	if err != nil {
		return models.Event{}, fmt.Errorf("Number of Participants: %v", err)
	}

	event := models.Event{
		ID:                   uuid.New().String(),
		Day:                  day,
		Date:                 date,
		Time:                 eventTime,
		Duration:             duration,
		Place:                place,
		NumberOfParticipants: participants,
		// Unknown statuses are normalized here, unlike the direct
		// status-update endpoint which rejects them
		Status:            models.NormalizeStatus(cell("Status")),
		PlaceOfMeeting:    cell("Place of Meeting"),
		Vehicle:           cell("Vehicle"),
		CameraMan:         cell("Camera Man"),
		ParticipationType: cell("Participation Type"),
		EventReason:       cell("Event Reason"),
		CreatedByID:       createdByID,
	}

	if raw := cell("Meeting Time"); raw != "" {
		meetingTime, err := models.ParseTimeOnly(raw)
		if err != nil {
			return models.Event{}, fmt.Errorf("Meeting Time: %v", err)
		}
		event.MeetingTime = &meetingTime
	}

	if raw := cell("Meeting Date"); raw != "" {
		meetingDate, err := models.ParseDateOnly(raw)
		if err != nil {
			return models.Event{}, fmt.Errorf("Meeting Date: %v", err)
		}
		event.MeetingDate = &meetingDate
	}

	return event, nil
}

func parseNonNegativeInt(value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", value)
	}
	if n < 0 {
		return 0, fmt.Errorf("%d must not be negative", n)
	}
	return n, nil
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
