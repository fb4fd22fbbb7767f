package person_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/person"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPerson(t *testing.T) {
	t.Run("should create a regular person", func(t *testing.T) {
		id := kernel.NewUUID()
		p, err := person.NewPerson(id, " Dana Ortiz ")

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, "Dana Ortiz", p.DisplayName())
		assert.Empty(t, p.Capabilities())
		assert.False(t, p.IsElevated())
	})

	t.Run("should collapse duplicate capabilities", func(t *testing.T) {
		p, err := person.NewPerson(kernel.NewUUID(), "Root", "ADMIN", person.CapabilityAdmin, person.CapabilitySuperAdmin)

		require.NoError(t, err)
		assert.Equal(t, []person.Capability{person.CapabilityAdmin, person.CapabilitySuperAdmin}, p.Capabilities())
		assert.True(t, p.Has(person.CapabilitySuperAdmin))
		assert.True(t, p.IsElevated())
	})

	t.Run("should reject unknown capability", func(t *testing.T) {
		_, err := person.NewPerson(kernel.NewUUID(), "Eve", "owner")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), `"owner" is not a known capability`)
	})

	t.Run("should join id and name errors", func(t *testing.T) {
		_, err := person.NewPerson(kernel.UUID{}, "")

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, person.ErrDisplayNameIsRequired)
	})

	t.Run("capabilities should be copied", func(t *testing.T) {
		p, _ := person.NewPerson(kernel.NewUUID(), "Root", person.CapabilityAdmin)

		caps := p.Capabilities()
		caps[0] = "tampered"

		assert.True(t, p.Has(person.CapabilityAdmin))
	})
}

func TestPerson_Validate(t *testing.T) {
	var nilPerson *person.Person
	require.ErrorIs(t, nilPerson.Validate(), person.ErrPersonIsNotConstructed)
	require.ErrorIs(t, (&person.Person{}).Validate(), person.ErrPersonIsNotConstructed)
}
