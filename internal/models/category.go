package models

import "fmt"

// Category is the closed product category enumeration. Unknown values are
// rejected at input time on both client and server.
type Category string

const (
	CategoryCable         Category = "Cable"
	CategoryCharger       Category = "Charger"
	CategoryHandsfree     Category = "Handsfree"
	CategoryPowerBank     Category = "PowerBank"
	CategoryCover         Category = "Cover"
	CategoryTemperedGlass Category = "TemperedGlass"
	CategoryOther         Category = "Other"
)

// Categories lists all valid categories in display order.
var Categories = []Category{
	CategoryCable,
	CategoryCharger,
	CategoryHandsfree,
	CategoryPowerBank,
	CategoryCover,
	CategoryTemperedGlass,
	CategoryOther,
}

// Valid reports whether c is one of the seven known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory converts a raw string into a Category, rejecting anything
// outside the enumeration.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category: %q", s)
	}
	return c, nil
}
