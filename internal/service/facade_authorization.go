package service

import (
	"context"

	"github.com/hbnb/hbnb-server/models"
)

// CanModifyPlace allows the owner of the place and administrators.
func CanModifyPlace(actor models.Identity, place *models.Place) error {
	if actor.IsAdmin || (actor.UserID != "" && actor.UserID == place.OwnerID) {
		return nil
	}
	return ErrForbidden
}

// CanModifyReview allows the author of the review and administrators.
func CanModifyReview(actor models.Identity, review *models.Review) error {
	if actor.IsAdmin || (actor.UserID != "" && actor.UserID == review.UserID) {
		return nil
	}
	return ErrForbidden
}

// CanModifyUser allows users to edit themselves and administrators to edit
// anyone. Only administrators may change the admin flag.
func CanModifyUser(actor models.Identity, userID string, update models.UserUpdate) error {
	if actor.IsAdmin {
		return nil
	}
	if actor.UserID == "" || actor.UserID != userID || update.IsAdmin != nil {
		return ErrForbidden
	}
	return nil
}

// UpdatePlaceAs is UpdatePlace on behalf of actor. Only administrators may
// hand the place over to another owner.
func (f *Facade) UpdatePlaceAs(ctx context.Context, actor models.Identity, id string, update models.PlaceUpdate) (*models.Place, error) {
	place, err := f.GetPlace(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = CanModifyPlace(actor, place); err != nil {
		return nil, err
	}
	if update.OwnerID != nil && *update.OwnerID != place.OwnerID && !actor.IsAdmin {
		return nil, ErrForbidden
	}
	return f.UpdatePlace(ctx, id, update)
}

// DeletePlaceAs is DeletePlace on behalf of actor.
func (f *Facade) DeletePlaceAs(ctx context.Context, actor models.Identity, id string) (bool, error) {
	place, err := f.GetPlace(ctx, id)
	if err != nil {
		return false, err
	}
	if err = CanModifyPlace(actor, place); err != nil {
		return false, err
	}
	return f.DeletePlace(ctx, id)
}

// UpdateReviewAs is UpdateReview on behalf of actor.
func (f *Facade) UpdateReviewAs(ctx context.Context, actor models.Identity, id string, update models.ReviewUpdate) (*models.Review, error) {
	review, err := f.GetReview(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = CanModifyReview(actor, review); err != nil {
		return nil, err
	}
	return f.UpdateReview(ctx, id, update)
}

// DeleteReviewAs is DeleteReview on behalf of actor.
func (f *Facade) DeleteReviewAs(ctx context.Context, actor models.Identity, id string) (bool, error) {
	review, err := f.GetReview(ctx, id)
	if err != nil {
		return false, err
	}
	if err = CanModifyReview(actor, review); err != nil {
		return false, err
	}
	return f.DeleteReview(ctx, id)
}

// UpdateUserAs is UpdateUser on behalf of actor.
func (f *Facade) UpdateUserAs(ctx context.Context, actor models.Identity, id string, update models.UserUpdate) (*models.User, error) {
	if err := CanModifyUser(actor, id, update); err != nil {
		return nil, err
	}
	return f.UpdateUser(ctx, id, update)
}
