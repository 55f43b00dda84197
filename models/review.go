package models

import (
	"strings"
)

// Rating bounds, inclusive.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a user's rating and comment on a place. It belongs to exactly
// one place and one author, and is destroyed with its place.
type Review struct {
	Base

	Text    string `json:"text"`
	Rating  int    `json:"rating"`
	UserID  string `json:"user_id"`
	PlaceID string `json:"place_id"`
}

// ReviewInput is the payload accepted when creating a review.
type ReviewInput struct {
	Text    string `json:"text"`
	Rating  int    `json:"rating"`
	UserID  string `json:"user_id"`
	PlaceID string `json:"place_id"`
}

// ReviewUpdate is the partial update of a [Review]. Author and place are
// fixed at creation.
type ReviewUpdate struct {
	Text   *string `json:"text,omitempty"`
	Rating *int    `json:"rating,omitempty"`
}

// NewReview validates input and builds an unsaved review.
func NewReview(input ReviewInput) (*Review, error) {
	review := &Review{
		Text:    input.Text,
		Rating:  input.Rating,
		UserID:  strings.TrimSpace(input.UserID),
		PlaceID: strings.TrimSpace(input.PlaceID),
	}

	if err := review.Validate(); err != nil {
		return nil, err
	}

	return review, nil
}

// Validate checks every field invariant of the review.
func (r *Review) Validate() error {
	if err := validateRequiredText("text", r.Text, 1000); err != nil {
		return err
	}
	if err := validateRating(r.Rating); err != nil {
		return err
	}
	if r.UserID == "" {
		return newValidationError("user_id", "is required")
	}
	if r.PlaceID == "" {
		return newValidationError("place_id", "is required")
	}
	return nil
}

func validateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return newValidationError("rating", "must be an integer between 1 and 5")
	}
	return nil
}

// Attribute returns the value of a queryable column.
func (r *Review) Attribute(name string) (any, bool) {
	switch name {
	case "id":
		return r.ID, true
	case "user_id":
		return r.UserID, true
	case "place_id":
		return r.PlaceID, true
	case "rating":
		return r.Rating, true
	}
	return nil, false
}

// Clone returns a deep copy.
func (r *Review) Clone() *Review {
	c := *r
	return &c
}

// Apply merges the non-nil fields into review.
func (u ReviewUpdate) Apply(review *Review) error {
	next := *review

	if u.Text != nil {
		next.Text = *u.Text
	}
	if u.Rating != nil {
		next.Rating = *u.Rating
	}

	if err := next.Validate(); err != nil {
		return err
	}

	*review = next
	return nil
}
