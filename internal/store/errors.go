package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when no entity matches the requested id or
	// attribute value.
	ErrNotFound = errors.New("entity not found")

	// ErrConflict is returned when an insert or update would duplicate an id
	// or a unique attribute (email, amenity name).
	ErrConflict = errors.New("entity conflicts with an existing one")

	// ErrReferenceViolation is returned when a write references a row that
	// does not exist (foreign key violation).
	ErrReferenceViolation = errors.New("entity references a missing row")

	// ErrUnknownAttribute is returned by attribute lookups on a name that is
	// not a queryable column of the entity.
	ErrUnknownAttribute = errors.New("unknown attribute")

	// ErrUnknownDriver is returned by [NewStorages] for an unsupported
	// storage driver name.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a result
	// row into an entity fails.
	ErrScanningRow = errors.New("failed to scan row")
)
