package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/siyam-display/catalog-api/internal/entity"
)

// oemDelimiter is the literal separator the source spreadsheets use in
// the "oems" column.
const oemDelimiter = " / "

// importExcludeKeys are the columns promoted to first-class part fields;
// everything else lands in the details bag. Keeping these out of details
// is what guarantees the bag never shadows a promoted field.
var importExcludeKeys = map[string]bool{
	"siyam_ref":   true,
	"type":        true,
	"make":        true,
	"application": true,
	"oems":        true,
	"category":    true,
}

// CSVRow is one data row keyed by column header, with the header order
// preserved so details keep their spreadsheet order.
type CSVRow struct {
	Headers []string
	Values  map[string]string
}

// Get looks a column up case-insensitively with whitespace trimmed on
// both sides; source spreadsheets vary header casing and spacing across
// exports.
func (r CSVRow) Get(key string) string {
	want := strings.ToLower(strings.TrimSpace(key))
	for h, v := range r.Values {
		if strings.ToLower(strings.TrimSpace(h)) == want {
			return v
		}
	}
	return ""
}

var ErrEmptyCSV = errors.New("csv file is empty or could not be parsed")

// ParseCSV reads the whole file into header-keyed rows. Short rows are
// padded and long rows truncated rather than rejected; real-world
// exports are never perfectly rectangular.
func ParseCSV(r io.Reader) ([]CSVRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err != nil {
		return nil, ErrEmptyCSV
	}
	for i, h := range headers {
		headers[i] = strings.TrimPrefix(h, "\ufeff")
	}

	var rows []CSVRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv parse error: %w", err)
		}

		values := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(record) {
				values[h] = record[i]
			} else {
				values[h] = ""
			}
		}
		rows = append(rows, CSVRow{Headers: headers, Values: values})
	}

	if len(rows) == 0 {
		return nil, ErrEmptyCSV
	}
	return rows, nil
}

// ImportPartsUseCase upserts one part per CSV row, keyed on siyam_ref.
// The import is best-effort: a bad row is recorded and skipped, never
// aborting the batch.
type ImportPartsUseCase struct {
	Parts entity.PartRepositoryInterface
}

func NewImportPartsUseCase(parts entity.PartRepositoryInterface) *ImportPartsUseCase {
	return &ImportPartsUseCase{Parts: parts}
}

func (uc *ImportPartsUseCase) Execute(ctx context.Context, rows []CSVRow) *ImportReport {
	report := &ImportReport{Processed: []ProcessedPart{}, Errors: []string{}}

	for i, row := range rows {
		// Display row numbers are 1-based and offset by the header row.
		displayRow := i + 2

		siyamRef := strings.TrimSpace(row.Get("siyam_ref"))
		if siyamRef == "" {
			report.Errors = append(report.Errors,
				fmt.Sprintf("Row %d: missing siyam_ref. Available columns: %s",
					displayRow, strings.Join(row.Headers, ", ")))
			continue
		}

		part := &entity.Part{
			SiyamRef:     siyamRef,
			RadiatorType: row.Get("type"),
			Make:         row.Get("make"),
			Model:        row.Get("application"),
			Category:     row.Get("category"),
			OEM:          splitOEMs(row.Get("oems")),
			Details:      extractDetails(row),
		}

		action, err := uc.upsert(ctx, part)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Row %d: %v", displayRow, err))
			continue
		}

		report.Processed = append(report.Processed, ProcessedPart{
			SiyamRef: part.SiyamRef,
			Action:   action,
		})
	}

	return report
}

func (uc *ImportPartsUseCase) upsert(ctx context.Context, part *entity.Part) (string, error) {
	existing, err := uc.Parts.FindBySiyamRef(ctx, part.SiyamRef)
	if err != nil {
		return "", err
	}

	if existing != nil {
		if err := uc.Parts.Update(ctx, part); err != nil {
			return "", err
		}
		return "updated", nil
	}

	if err := uc.Parts.Insert(ctx, part); err != nil {
		return "", err
	}
	return "created", nil
}

// splitOEMs splits the oems column on the literal " / " delimiter and
// drops blank fragments; a blank or missing column is an empty list.
func splitOEMs(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}

	oems := []string{}
	for _, fragment := range strings.Split(raw, oemDelimiter) {
		if strings.TrimSpace(fragment) != "" {
			oems = append(oems, fragment)
		}
	}
	return oems
}

// extractDetails turns every non-promoted column into one details entry,
// keyed by the original column name. Blank values are omitted entirely.
func extractDetails(row CSVRow) []entity.Detail {
	details := []entity.Detail{}
	for _, header := range row.Headers {
		if importExcludeKeys[strings.ToLower(strings.TrimSpace(header))] {
			continue
		}
		value := strings.TrimSpace(row.Values[header])
		if value == "" {
			continue
		}
		details = append(details, entity.Detail{Name: header, Data: value})
	}
	return details
}
