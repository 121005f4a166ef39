package entity

import (
	"context"
)

// Detail is one entry of a part's open-ended attribute bag. Order is
// display-relevant and must survive storage round-trips.
type Detail struct {
	Name string `json:"name"`
	Data string `json:"data"`
}

type Part struct {
	ID           string   `json:"id"`
	SiyamRef     string   `json:"siyam_ref"`
	RadiatorType string   `json:"radiator_type"`
	Make         string   `json:"make"`
	Model        string   `json:"model"`
	OEM          []string `json:"oem"`
	Category     string   `json:"category"`
	Details      []Detail `json:"details"`
	ImageURL     string   `json:"image_url,omitempty"`
	ImageKey     string   `json:"image_key,omitempty"`
	AmazonURL    string   `json:"amazon_url,omitempty"`
}

// HasDetail reports whether the attribute bag already carries an entry
// with the given name.
func (p *Part) HasDetail(name string) bool {
	for _, d := range p.Details {
		if d.Name == name {
			return true
		}
	}
	return false
}

type PartFilter struct {
	Category string // exact match, case-insensitive; empty = no filter
	Search   string // substring token, case-insensitive; empty = no filter
}

type PartRepositoryInterface interface {
	Find(ctx context.Context, filter PartFilter) ([]*Part, error)
	FindOne(ctx context.Context, category, siyamRef string) (*Part, error)
	FindBySiyamRef(ctx context.Context, siyamRef string) (*Part, error)
	Autocomplete(ctx context.Context, query string) ([]*Part, error)
	AutocompleteFallback(ctx context.Context, query string, limit int) ([]*Part, error)
	Insert(ctx context.Context, p *Part) error
	Update(ctx context.Context, p *Part) error
}
