package models

import (
	"math"
	"slices"
	"strings"
)

// Place is a listing offered by its owner.
//
// Amenities and Reviews hold ids, in the order they were attached. Reviews
// is owned by the place: deleting the place deletes every review in it.
type Place struct {
	Base

	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	OwnerID     string   `json:"owner_id"`
	Amenities   []string `json:"amenities"`
	Reviews     []string `json:"reviews"`
}

// PlaceInput is the payload accepted when creating a place.
type PlaceInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	OwnerID     string   `json:"owner_id"`
	Amenities   []string `json:"amenities"`
}

// PlaceUpdate is the partial update of a [Place]. A non-nil Amenities
// replaces the whole amenity set.
type PlaceUpdate struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	OwnerID     *string   `json:"owner_id,omitempty"`
	Amenities   *[]string `json:"amenities,omitempty"`
}

// PlaceDetails is the read model of a place with its references resolved.
type PlaceDetails struct {
	Base

	Title       string       `json:"title"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	Latitude    float64      `json:"latitude"`
	Longitude   float64      `json:"longitude"`
	OwnerID     string       `json:"owner_id"`
	Owner       UserResponse `json:"owner"`
	Amenities   []Amenity    `json:"amenities"`
	Reviews     []Review     `json:"reviews"`
}

// NewPlace validates input and builds an unsaved place. Duplicate amenity ids
// are collapsed, keeping the first occurrence.
func NewPlace(input PlaceInput) (*Place, error) {
	place := &Place{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Price:       input.Price,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		OwnerID:     strings.TrimSpace(input.OwnerID),
		Amenities:   UniqueIDs(input.Amenities),
		Reviews:     []string{},
	}

	if err := place.Validate(); err != nil {
		return nil, err
	}

	return place, nil
}

// Validate checks every field invariant of the place.
func (p *Place) Validate() error {
	if err := validateRequiredText("title", p.Title, 100); err != nil {
		return err
	}
	// negated forms so NaN fails every check
	if !(p.Price > 0) || math.IsInf(p.Price, 0) {
		return newValidationError("price", "must be a positive value")
	}
	if !(p.Latitude >= -90 && p.Latitude <= 90) {
		return newValidationError("latitude", "must be between -90 and 90")
	}
	if !(p.Longitude >= -180 && p.Longitude <= 180) {
		return newValidationError("longitude", "must be between -180 and 180")
	}
	if p.OwnerID == "" {
		return newValidationError("owner_id", "is required")
	}
	return nil
}

// Attribute returns the value of a queryable column.
func (p *Place) Attribute(name string) (any, bool) {
	switch name {
	case "id":
		return p.ID, true
	case "title":
		return p.Title, true
	case "owner_id":
		return p.OwnerID, true
	}
	return nil, false
}

// Clone returns a deep copy.
func (p *Place) Clone() *Place {
	c := *p
	c.Amenities = cloneStrings(p.Amenities)
	c.Reviews = cloneStrings(p.Reviews)
	return &c
}

// Details assembles the read model from already resolved references.
func (p *Place) Details(owner *User, amenities []*Amenity, reviews []*Review) PlaceDetails {
	details := PlaceDetails{
		Base:        p.Base,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		OwnerID:     p.OwnerID,
		Amenities:   make([]Amenity, 0, len(amenities)),
		Reviews:     make([]Review, 0, len(reviews)),
	}
	if owner != nil {
		details.Owner = owner.Response()
	}
	for _, a := range amenities {
		details.Amenities = append(details.Amenities, *a)
	}
	for _, r := range reviews {
		details.Reviews = append(details.Reviews, *r)
	}
	return details
}

// Apply merges the non-nil fields into place.
func (u PlaceUpdate) Apply(place *Place) error {
	next := *place.Clone()

	if u.Title != nil {
		next.Title = strings.TrimSpace(*u.Title)
	}
	if u.Description != nil {
		next.Description = *u.Description
	}
	if u.Price != nil {
		next.Price = *u.Price
	}
	if u.Latitude != nil {
		next.Latitude = *u.Latitude
	}
	if u.Longitude != nil {
		next.Longitude = *u.Longitude
	}
	if u.OwnerID != nil {
		next.OwnerID = strings.TrimSpace(*u.OwnerID)
	}
	if u.Amenities != nil {
		next.Amenities = UniqueIDs(*u.Amenities)
	}

	if err := next.Validate(); err != nil {
		return err
	}

	*place = next
	return nil
}

// AttachReview appends a review id to a place's review collection.
type AttachReview string

// Apply implements the storage patch contract.
func (id AttachReview) Apply(place *Place) error {
	if !slices.Contains(place.Reviews, string(id)) {
		place.Reviews = append(place.Reviews, string(id))
	}
	return nil
}

// DetachReview removes a review id from a place's review collection.
type DetachReview string

// Apply implements the storage patch contract.
func (id DetachReview) Apply(place *Place) error {
	place.Reviews = slices.DeleteFunc(place.Reviews, func(v string) bool { return v == string(id) })
	return nil
}

// DetachAmenity removes an amenity id from a place's amenity set.
type DetachAmenity string

// Apply implements the storage patch contract.
func (id DetachAmenity) Apply(place *Place) error {
	place.Amenities = slices.DeleteFunc(place.Amenities, func(v string) bool { return v == string(id) })
	return nil
}

// UniqueIDs trims ids, drops blanks and duplicates, and keeps the first
// occurrence order. The result is never nil.
func UniqueIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || slices.Contains(out, id) {
			continue
		}
		out = append(out, id)
	}
	return out
}
