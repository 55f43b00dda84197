package models

import "strings"

// Amenity is a named feature (e.g. "Wi-Fi") that places can offer.
type Amenity struct {
	Base

	Name string `json:"name"`
}

// AmenityInput is the payload accepted when creating an amenity.
type AmenityInput struct {
	Name string `json:"name"`
}

// AmenityUpdate is the partial update of an [Amenity].
type AmenityUpdate struct {
	Name *string `json:"name,omitempty"`
}

// NewAmenity validates input and builds an unsaved amenity.
func NewAmenity(input AmenityInput) (*Amenity, error) {
	amenity := &Amenity{Name: strings.TrimSpace(input.Name)}
	if err := amenity.Validate(); err != nil {
		return nil, err
	}
	return amenity, nil
}

// Validate checks every field invariant of the amenity.
func (a *Amenity) Validate() error {
	return validateRequiredText("name", a.Name, 50)
}

// Attribute returns the value of a queryable column.
func (a *Amenity) Attribute(name string) (any, bool) {
	switch name {
	case "id":
		return a.ID, true
	case "name":
		return a.Name, true
	}
	return nil, false
}

// Clone returns a deep copy.
func (a *Amenity) Clone() *Amenity {
	c := *a
	return &c
}

// Apply merges the non-nil fields into amenity.
func (u AmenityUpdate) Apply(amenity *Amenity) error {
	if u.Name == nil {
		return nil
	}

	next := *amenity
	next.Name = strings.TrimSpace(*u.Name)
	if err := next.Validate(); err != nil {
		return err
	}

	*amenity = next
	return nil
}

// NormalizedName returns the name in the form it is stored, or "" when the
// update does not touch it.
func (u AmenityUpdate) NormalizedName() string {
	if u.Name == nil {
		return ""
	}
	return strings.TrimSpace(*u.Name)
}
