package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeRelationHash(t *testing.T) {
	hash := SerializeRelationHash(map[string]string{"size": "M", "color": "Red"})
	assert.Equal(t, "Color=Red;Size=M", hash)
}

func TestSerializeRelationHash_OrderIndependent(t *testing.T) {
	a := map[string]string{"Size": "M", "Color": "Red", "material": "Cotton"}
	b := map[string]string{"material": "Cotton", "Color": "Red", "Size": "M"}
	for i := 0; i < 20; i++ {
		assert.Equal(t, SerializeRelationHash(a), SerializeRelationHash(b))
	}
}

func TestSerializeRelationHash_Idempotent(t *testing.T) {
	hash := SerializeRelationHash(map[string]string{"size": "XL", "color": "Blue"})
	params, err := DeserializeRelationHash(hash)
	require.NoError(t, err)
	assert.Equal(t, hash, SerializeRelationHash(params))
}

// TestRelationHash_RoundTrip decodes to the input with normalized keys.
func TestRelationHash_RoundTrip(t *testing.T) {
	in := map[string]string{"color": "Red", "Size": "M", "état": "neuf", "Note": "a=b"}
	out, err := DeserializeRelationHash(SerializeRelationHash(in))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Color": "Red", "Size": "M", "État": "neuf", "Note": "a=b"}, out)
}

func TestDeserializeRelationHash_Empty(t *testing.T) {
	out, err := DeserializeRelationHash("")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDeserializeRelationHash_MalformedToken(t *testing.T) {
	for _, hash := range []string{"Color", "Color=Red;Size", "Color=", "=Red", "Color=Red;;Size=M"} {
		_, err := DeserializeRelationHash(hash)
		require.ErrorIs(t, err, ErrInvalidRelationHash, hash)
		assert.Contains(t, err.Error(), hash)
	}
}

func TestNewVariant_RejectsUnhashableParameters(t *testing.T) {
	p := newTestProduct(t, NewMoneyFromInt(100))
	_, err := NewVariant("v1", p, map[string]string{"Size": "M;L"}, testNow)
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = NewVariant("v1", p, map[string]string{"Si=ze": "M"}, testNow)
	require.ErrorIs(t, err, ErrInvalidParameter)
	assert.Empty(t, p.Variants())
}
