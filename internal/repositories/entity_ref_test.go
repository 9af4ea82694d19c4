package repositories

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntityRef_Numeric(t *testing.T) {
	ref, err := ParseEntityRef("42")
	require.NoError(t, err)
	assert.True(t, ref.IsNumeric())
	assert.Equal(t, uint(42), ref.ID)
	assert.Equal(t, "42", ref.String())
}

func TestParseEntityRef_UUID(t *testing.T) {
	id := uuid.New()
	ref, err := ParseEntityRef(id.String())
	require.NoError(t, err)
	assert.False(t, ref.IsNumeric())
	assert.Equal(t, id, ref.UUID)
	assert.Equal(t, id.String(), ref.String())
}

func TestParseEntityRef_AllDigitsNeverParsedAsUUID(t *testing.T) {
	// A digit-only string is a numeric ID even when long
	ref, err := ParseEntityRef("123456789012")
	require.NoError(t, err)
	assert.True(t, ref.IsNumeric())
}

func TestParseEntityRef_Invalid(t *testing.T) {
	for _, raw := range []string{"", "abc", "12a", "-5", "550e8400-bad"} {
		_, err := ParseEntityRef(raw)
		assert.Error(t, err, "expected %q to be rejected", raw)
	}
}
