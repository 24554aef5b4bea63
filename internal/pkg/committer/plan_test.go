package committer

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan_SkipsNil(t *testing.T) {
	p := NewPlan()
	assert.True(t, p.IsEmpty())

	m := spanner.Insert("colors", []string{"name"}, []interface{}{"red"})
	p.Add(nil, m, nil)

	assert.Equal(t, 1, p.Len())
	assert.Same(t, m, p.Mutations()[0])
}

func TestAdapter_EmptyPlanIsNoop(t *testing.T) {
	a := NewAdapter(nil)
	require.NoError(t, a.Apply(context.Background(), nil))
	require.NoError(t, a.Apply(context.Background(), NewPlan()))
}

func TestAdapter_NilClient(t *testing.T) {
	p := NewPlan()
	p.Add(spanner.Insert("colors", []string{"name"}, []interface{}{"red"}))
	assert.Error(t, NewAdapter(nil).Apply(context.Background(), p))
}
