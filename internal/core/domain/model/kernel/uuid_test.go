package kernel_test

import (
	"encoding/json"
	"testing"

	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const canonical = "550e8400-e29b-41d4-a716-446655440000"

func TestNewUUID(t *testing.T) {
	a, b := kernel.NewUUID(), kernel.NewUUID()

	require.NoError(t, a.Validate())
	assert.False(t, a.IsEqual(b))
	assert.NotEqual(t, uuid.Nil, a.Bytes())
}

func TestUUIDFromString(t *testing.T) {
	accepted := map[string]string{
		"canonical":  canonical,
		"braced":     "{" + canonical + "}",
		"urn":        "urn:uuid:" + canonical,
		"no hyphens": "550e8400e29b41d4a716446655440000",
	}
	for name, raw := range accepted {
		t.Run(name, func(t *testing.T) {
			id, err := kernel.UUIDFromString(raw)
			require.NoError(t, err)
			assert.Equal(t, canonical, id.String())
		})
	}

	for _, raw := range []string{"", "order-17", "550e8400-e29b-41d4-a716", canonical + "-extra"} {
		_, err := kernel.UUIDFromString(raw)
		assert.ErrorContains(t, err, "invalid UUID format", raw)
	}
}

func TestUUIDFromBytes(t *testing.T) {
	parsed := uuid.MustParse(canonical)

	id, err := kernel.UUIDFromBytes(parsed[:])
	require.NoError(t, err)
	assert.Equal(t, parsed, id.Bytes())

	_, err = kernel.UUIDFromBytes([]byte{0x55, 0x0e})
	require.ErrorContains(t, err, "invalid UUID format")

	_, err = kernel.UUIDFromBytes(uuid.Nil[:])
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestUUID_ValidateRejectsNil(t *testing.T) {
	var zero kernel.UUID
	require.ErrorIs(t, zero.Validate(), kernel.ErrUUIDIsNotConstructed)

	parsedNil, err := kernel.UUIDFromString(uuid.Nil.String())
	require.NoError(t, err)
	require.ErrorIs(t, parsedNil.Validate(), kernel.ErrUUIDIsNotConstructed)
}

func TestUUID_UsableAsMapKey(t *testing.T) {
	a, err := kernel.UUIDFromString(canonical)
	require.NoError(t, err)
	b, err := kernel.UUIDFromString("{" + canonical + "}")
	require.NoError(t, err)

	names := map[kernel.UUID]string{a: "Dana Driver"}

	assert.True(t, a.IsEqual(b))
	assert.Equal(t, "Dana Driver", names[b])
}

func TestUUID_Text(t *testing.T) {
	type membership struct {
		Person kernel.UUID `json:"person"`
	}
	id, err := kernel.UUIDFromString(canonical)
	require.NoError(t, err)

	data, err := json.Marshal(membership{Person: id})
	require.NoError(t, err)
	assert.JSONEq(t, `{"person":"`+canonical+`"}`, string(data))

	var decoded membership
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Person.IsEqual(id))

	var bad kernel.UUID
	require.ErrorContains(t, bad.UnmarshalText([]byte("order-17")), "invalid UUID format")
	assert.Error(t, bad.Validate())
}
