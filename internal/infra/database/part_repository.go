package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/lib/pq"

	"github.com/siyam-display/catalog-api/internal/entity"
)

const partColumns = `id, siyam_ref, radiator_type, make, model, oem, category, details, image_url, image_key, amazon_url`

type PartRepository struct {
	DB *sql.DB
}

func NewPartRepository(db *sql.DB) *PartRepository {
	return &PartRepository{DB: db}
}

// Find applies the optional category and search filters. Category is a
// case-insensitive exact match; the search token is a case-insensitive
// substring match across siyam_ref, make, model, radiator_type and the
// oem aliases. Results are ordered by siyam_ref ascending.
func (r *PartRepository) Find(ctx context.Context, filter entity.PartFilter) ([]*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts`

	var conds []string
	var args []interface{}

	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("category ILIKE $%d", len(args)))
	}

	if filter.Search != "" {
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			`(siyam_ref ILIKE $%d OR make ILIKE $%d OR model ILIKE $%d OR radiator_type ILIKE $%d
				OR EXISTS (SELECT 1 FROM unnest(oem) AS o WHERE o ILIKE $%d))`,
			n, n, n, n, n,
		))
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY siyam_ref ASC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanParts(rows)
}

// FindOne looks up a single part by category (case-insensitive exact) and
// siyam_ref (exact, case-sensitive). Returns (nil, nil) when absent:
// not-found is a valid terminal state, not an error.
func (r *PartRepository) FindOne(ctx context.Context, category, siyamRef string) (*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts WHERE category ILIKE $1 AND siyam_ref = $2 LIMIT 1`

	p, err := scanPart(r.DB.QueryRowContext(ctx, query, category, siyamRef))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

func (r *PartRepository) FindBySiyamRef(ctx context.Context, siyamRef string) (*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts WHERE siyam_ref = $1 LIMIT 1`

	p, err := scanPart(r.DB.QueryRowContext(ctx, query, siyamRef))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

// Autocomplete runs the indexed prefix search over siyam_ref, model and
// oem. The expression must stay in sync with the GIN index in
// migrations/001_init.sql.
func (r *PartRepository) Autocomplete(ctx context.Context, query string) ([]*entity.Part, error) {
	ts := prefixTSQuery(query)
	if ts == "" {
		return nil, errors.New("query has no searchable terms")
	}

	stmt := `SELECT ` + partColumns + ` FROM parts
		WHERE to_tsvector('simple', siyam_ref || ' ' || model || ' ' || array_to_string(oem, ' '))
			@@ to_tsquery('simple', $1)`

	rows, err := r.DB.QueryContext(ctx, stmt, ts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanParts(rows)
}

// AutocompleteFallback is the degraded path when the indexed search
// errors: plain case-insensitive substring match, capped.
func (r *PartRepository) AutocompleteFallback(ctx context.Context, query string, limit int) ([]*entity.Part, error) {
	stmt := `SELECT ` + partColumns + ` FROM parts
		WHERE siyam_ref ILIKE $1 OR model ILIKE $1
			OR EXISTS (SELECT 1 FROM unnest(oem) AS o WHERE o ILIKE $1)
		LIMIT $2`

	rows, err := r.DB.QueryContext(ctx, stmt, "%"+escapeLike(query)+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanParts(rows)
}

func (r *PartRepository) Insert(ctx context.Context, p *entity.Part) error {
	details, err := marshalDetails(p.Details)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO parts (siyam_ref, radiator_type, make, model, oem, category, details, image_url, image_key, amazon_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	return r.DB.QueryRowContext(
		ctx,
		query,
		p.SiyamRef,
		p.RadiatorType,
		p.Make,
		p.Model,
		pq.Array(p.OEM),
		p.Category,
		details,
		p.ImageURL,
		p.ImageKey,
		p.AmazonURL,
	).Scan(&p.ID)
}

// Update replaces every import-mapped field wholesale, details included.
// Image and Amazon fields are managed outside the importer and are left
// untouched.
func (r *PartRepository) Update(ctx context.Context, p *entity.Part) error {
	details, err := marshalDetails(p.Details)
	if err != nil {
		return err
	}

	query := `
		UPDATE parts
		SET radiator_type = $2, make = $3, model = $4, oem = $5, category = $6, details = $7
		WHERE siyam_ref = $1
	`

	_, err = r.DB.ExecContext(
		ctx,
		query,
		p.SiyamRef,
		p.RadiatorType,
		p.Make,
		p.Model,
		pq.Array(p.OEM),
		p.Category,
		details,
	)
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPart(row rowScanner) (*entity.Part, error) {
	var p entity.Part
	var details []byte

	err := row.Scan(
		&p.ID,
		&p.SiyamRef,
		&p.RadiatorType,
		&p.Make,
		&p.Model,
		pq.Array(&p.OEM),
		&p.Category,
		&details,
		&p.ImageURL,
		&p.ImageKey,
		&p.AmazonURL,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(details, &p.Details); err != nil {
		return nil, fmt.Errorf("corrupt details for %s: %w", p.SiyamRef, err)
	}

	return &p, nil
}

func scanParts(rows *sql.Rows) ([]*entity.Part, error) {
	parts := []*entity.Part{}
	for rows.Next() {
		p, err := scanPart(rows)
		if err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	return parts, rows.Err()
}

func marshalDetails(details []entity.Detail) ([]byte, error) {
	if details == nil {
		details = []entity.Detail{}
	}
	return json.Marshal(details)
}

// prefixTSQuery turns free text into a prefix tsquery ("r12:* & alu:*").
// Non-alphanumeric runes are treated as separators, which also keeps
// tsquery syntax characters out of the expression.
func prefixTSQuery(query string) string {
	terms := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(terms) == 0 {
		return ""
	}
	for i, t := range terms {
		terms[i] = t + ":*"
	}
	return strings.Join(terms, " & ")
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	return strings.ReplaceAll(s, `_`, `\_`)
}
