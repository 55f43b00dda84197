//go:build !cgo

package store

// SQLiteErrorClassifier is a stand-in for builds without cgo, where the
// sqlite3 driver cannot open databases at all.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

func (c *SQLiteErrorClassifier) Classify(error) ErrorClassification {
	return Unclassified
}
