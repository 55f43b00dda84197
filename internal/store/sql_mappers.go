package store

import (
	"slices"

	"github.com/hbnb/hbnb-server/models"
)

// tableMapper binds an entity type to its table. columns lists the selected
// and inserted columns in the order values and targets produce them; the
// column names double as the queryable attribute names.
type tableMapper[T any] struct {
	table     string
	columns   []string
	newEntity func() T
	values    func(T) []any
	targets   func(T) []any
	relations []relation[T]
}

func (m *tableMapper[T]) hasColumn(name string) bool {
	return slices.Contains(m.columns, name)
}

// relationMapper describes an ordered id collection kept in a join table.
type relationMapper struct {
	table       string
	ownerColumn string
	valueColumn string
}

type relation[T any] struct {
	relationMapper
	get func(T) []string
	set func(T, []string)
}

func userMapper() *tableMapper[*models.User] {
	return &tableMapper[*models.User]{
		table:     "users",
		columns:   []string{"id", "first_name", "last_name", "email", "password_hash", "is_admin", "created_at", "updated_at"},
		newEntity: func() *models.User { return &models.User{} },
		values: func(u *models.User) []any {
			return []any{u.ID, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.IsAdmin, u.CreatedAt, u.UpdatedAt}
		},
		targets: func(u *models.User) []any {
			return []any{&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt}
		},
	}
}

func amenityMapper() *tableMapper[*models.Amenity] {
	return &tableMapper[*models.Amenity]{
		table:     "amenities",
		columns:   []string{"id", "name", "created_at", "updated_at"},
		newEntity: func() *models.Amenity { return &models.Amenity{} },
		values: func(a *models.Amenity) []any {
			return []any{a.ID, a.Name, a.CreatedAt, a.UpdatedAt}
		},
		targets: func(a *models.Amenity) []any {
			return []any{&a.ID, &a.Name, &a.CreatedAt, &a.UpdatedAt}
		},
	}
}

func reviewMapper() *tableMapper[*models.Review] {
	return &tableMapper[*models.Review]{
		table:     "reviews",
		columns:   []string{"id", "text", "rating", "user_id", "place_id", "created_at", "updated_at"},
		newEntity: func() *models.Review { return &models.Review{} },
		values: func(r *models.Review) []any {
			return []any{r.ID, r.Text, r.Rating, r.UserID, r.PlaceID, r.CreatedAt, r.UpdatedAt}
		},
		targets: func(r *models.Review) []any {
			return []any{&r.ID, &r.Text, &r.Rating, &r.UserID, &r.PlaceID, &r.CreatedAt, &r.UpdatedAt}
		},
	}
}

func placeMapper() *tableMapper[*models.Place] {
	return &tableMapper[*models.Place]{
		table:     "places",
		columns:   []string{"id", "title", "description", "price", "latitude", "longitude", "owner_id", "created_at", "updated_at"},
		newEntity: func() *models.Place { return &models.Place{Amenities: []string{}, Reviews: []string{}} },
		values: func(p *models.Place) []any {
			return []any{p.ID, p.Title, p.Description, p.Price, p.Latitude, p.Longitude, p.OwnerID, p.CreatedAt, p.UpdatedAt}
		},
		targets: func(p *models.Place) []any {
			return []any{&p.ID, &p.Title, &p.Description, &p.Price, &p.Latitude, &p.Longitude, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt}
		},
		relations: []relation[*models.Place]{
			{
				relationMapper: relationMapper{table: "place_amenities", ownerColumn: "place_id", valueColumn: "amenity_id"},
				get:            func(p *models.Place) []string { return p.Amenities },
				set:            func(p *models.Place, ids []string) { p.Amenities = ids },
			},
			{
				relationMapper: relationMapper{table: "place_reviews", ownerColumn: "place_id", valueColumn: "review_id"},
				get:            func(p *models.Place) []string { return p.Reviews },
				set:            func(p *models.Place, ids []string) { p.Reviews = ids },
			},
		},
	}
}
