package domain

import (
	"strings"
	"time"
)

type Property struct {
	ID         string
	LandlordID string
	Name       string
	Address    string
	UnitNumber string
	Occupied   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PropertyDetails are the landlord-editable fields of a property.
type PropertyDetails struct {
	Name       string
	Address    string
	UnitNumber string
}

// Normalize trims surrounding whitespace.
func (d PropertyDetails) Normalize() PropertyDetails {
	return PropertyDetails{
		Name:       strings.TrimSpace(d.Name),
		Address:    strings.TrimSpace(d.Address),
		UnitNumber: strings.TrimSpace(d.UnitNumber),
	}
}

// Validate expects normalized input.
func (d PropertyDetails) Validate() error {
	errs := fieldErrors{}

	switch {
	case d.Name == "":
		errs.add("name", msgRequired)
	case len(d.Name) > 200:
		errs.add("name", "too long (max 200)")
	}

	switch {
	case d.Address == "":
		errs.add("address", msgRequired)
	case len(d.Address) > 1000:
		errs.add("address", "too long (max 1000)")
	}

	if len(d.UnitNumber) > 50 {
		errs.add("unit_number", "too long (max 50)")
	}

	return errs.err()
}
