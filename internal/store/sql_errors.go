package store

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. It tells repositories how a failed
// database operation relates to the domain.
type ErrorClassification int

const (
	// Unclassified is the default for unrecognised errors.
	Unclassified ErrorClassification = iota

	// UniqueViolation marks an insert that collided with a unique index.
	UniqueViolation

	// ForeignKeyViolation marks a write that referenced a missing row.
	ForeignKeyViolation

	// Retryable marks transient failures (lost connection, deadlock,
	// serialization failure, busy database).
	Retryable
)

// ErrorClassificator maps driver specific errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
