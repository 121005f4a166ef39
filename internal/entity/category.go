package entity

import "strings"

// Category keys form a closed set; anything else is an unknown category,
// which is an empty-result condition rather than an error.
type Category struct {
	Key         string
	DisplayName string
}

var categories = map[string]Category{
	"ptr":           {Key: "ptr", DisplayName: "PTR"},
	"bt":            {Key: "bt", DisplayName: "BT"},
	"cac":           {Key: "cac", DisplayName: "CAC"},
	"automotive_cb": {Key: "automotive_cb", DisplayName: "Automotive CB"},
	"automotive_pa": {Key: "automotive_pa", DisplayName: "Automotive PA"},
}

// LookupCategory resolves a user-supplied category key, case-insensitively.
func LookupCategory(key string) (Category, bool) {
	c, ok := categories[strings.ToLower(key)]
	return c, ok
}
