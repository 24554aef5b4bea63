package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type request struct {
	Ordering string `validate:"required,oneof=smart cheapest"`
	Limit    int    `validate:"min=1,max=100"`
}

func TestStruct(t *testing.T) {
	require.NoError(t, Struct(request{Ordering: "smart", Limit: 10}))

	err := Struct(request{Ordering: "random", Limit: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Ordering must be one of: smart cheapest")
	assert.Contains(t, err.Error(), "Limit must be at least 1")
}

func TestValidatorIsShared(t *testing.T) {
	assert.Same(t, Validator(), Validator())
}
