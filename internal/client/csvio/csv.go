// Package csvio читает и пишет журнал прогулок в CSV формате
// с заголовком Date,Distance,TimeElapsed.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/walklog/internal/models"
	"github.com/iudanet/walklog/internal/validation"
)

// Header заголовок CSV файла
var Header = []string{"Date", "Distance", "TimeElapsed"}

// ErrNoData в файле нет ни одной корректной строки
var ErrNoData = errors.New("no valid data found in CSV file")

// ReadResult результат разбора CSV
type ReadResult struct {
	Walks   []models.Walk
	Skipped int // пропущенные некорректные строки
}

// DefaultFileName имя файла экспорта по умолчанию
func DefaultFileName(now time.Time) string {
	return fmt.Sprintf("walking-data-%s.csv", models.DateOf(now))
}

// Read разбирает CSV. Первая строка считается заголовком, пустые строки игнорируются,
// строки с некорректными значениями пропускаются.
func Read(r io.Reader) (*ReadResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("invalid CSV file format: %w", ErrNoData)
	}

	result := &ReadResult{}
	for _, record := range records[1:] {
		walk, err := parseRecord(record)
		if err != nil {
			result.Skipped++
			continue
		}
		result.Walks = append(result.Walks, walk)
	}

	if len(result.Walks) == 0 {
		return nil, ErrNoData
	}
	return result, nil
}

// Write пишет прогулки в CSV с заголовком
func Write(w io.Writer, walks []models.Walk) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, walk := range walks {
		row := []string{
			walk.Date.String(),
			strconv.FormatFloat(walk.Distance, 'f', -1, 64),
			strconv.Itoa(walk.TimeElapsed),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func parseRecord(record []string) (models.Walk, error) {
	if len(record) < 3 {
		return models.Walk{}, fmt.Errorf("expected 3 fields, got %d", len(record))
	}

	date, err := models.ParseDate(record[0])
	if err != nil {
		return models.Walk{}, err
	}
	distance, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
	if err != nil {
		return models.Walk{}, fmt.Errorf("invalid distance: %w", err)
	}
	elapsed, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
	if err != nil {
		return models.Walk{}, fmt.Errorf("invalid time elapsed: %w", err)
	}

	walk := models.Walk{
		Date:        date,
		Distance:    distance,
		TimeElapsed: int(math.Round(elapsed)),
	}
	if err := validation.ValidateWalk(walk); err != nil {
		return models.Walk{}, err
	}
	return walk, nil
}
