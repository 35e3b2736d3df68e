package store_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyhub/backend/internal/store"
)

func TestErrorMessages(t *testing.T) {
	assert.EqualError(t, &store.NotFoundError{Resource: "Course"}, "Course not found")
	assert.EqualError(t, &store.ValidationError{Field: "name"}, `required field "name" is missing or empty`)
	assert.EqualError(t,
		&store.ConsistencyError{Detail: "membership 3 references missing lobby 7"},
		"data consistency violation: membership 3 references missing lobby 7")
}

func TestErrorsMatchThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("delete lobby: %w", &store.NotFoundError{Resource: "Lobby"})

	var notFoundErr *store.NotFoundError
	require.ErrorAs(t, wrapped, &notFoundErr)
	assert.Equal(t, "Lobby", notFoundErr.Resource)

	var validationErr *store.ValidationError
	assert.False(t, errors.As(wrapped, &validationErr))
}
