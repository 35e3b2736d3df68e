package store

import "fmt"

// NotFoundError reports that a requested or referenced entity does not
// exist. Handlers map it to a 404.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// ValidationError reports a missing or malformed required field. Handlers
// map it to a 400.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required field %q is missing or empty", e.Field)
}

// ConsistencyError reports a broken data-model invariant, such as a foreign
// key pointing at a row that no longer exists. It is a defect in the store,
// not a normal miss, and handlers map it to a 500.
type ConsistencyError struct {
	Detail string
}

func (e *ConsistencyError) Error() string {
	return "data consistency violation: " + e.Detail
}

func notFound(resource string) error {
	return &NotFoundError{Resource: resource}
}
