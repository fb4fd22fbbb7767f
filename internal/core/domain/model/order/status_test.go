package order_test

import (
	"fmt"
	"strings"
	"testing"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 8, int(order.Returned))
	})

	t.Run("should list the vocabulary in canonical order", func(t *testing.T) {
		names := make([]string, 0, len(order.Statuses()))
		for _, s := range order.Statuses() {
			names = append(names, s.String())
		}

		assert.Equal(t, []string{
			"Pending", "Assigned", "Loading", "InProgress",
			"Unloading", "Delivered", "Cancelled", "Returned",
		}, names)
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse every vocabulary entry in any case", func(t *testing.T) {
		for _, s := range order.Statuses() {
			variants := []string{s.String(), strings.ToLower(s.String()), strings.ToUpper(s.String())}
			for _, raw := range variants {
				t.Run(raw, func(t *testing.T) {
					parsed, err := order.ParseStatus(raw)

					require.NoError(t, err)
					assert.Equal(t, s, parsed)
				})
			}
		}
	})

	t.Run("should reject strings outside the vocabulary", func(t *testing.T) {
		invalid := []string{
			"", "Unknown", "unknown", "Shipped", "In Progress", "in_progress",
			" Pending", "Pending ", "Pendingg", "Deliver", "1",
			"Aſſigned", "INPROGREſS", "ＰＥＮＤＩＮＧ",
		}

		for _, raw := range invalid {
			t.Run(fmt.Sprintf("%q", raw), func(t *testing.T) {
				parsed, err := order.ParseStatus(raw)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrStatusIsInvalid)
				assert.Equal(t, errs.KindInvalidStatus, errs.KindOf(err))
				assert.Equal(t, order.Unknown, parsed)
			})
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range order.Statuses() {
		require.NoError(t, s.Validate())
	}

	for _, s := range []order.Status{order.Unknown, order.Status(-1), order.Status(9)} {
		err := s.Validate()
		require.Error(t, err)
		assert.IsType(t, &errs.StatusIsInvalidError{}, err)
		assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(s)))
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	terminal := map[order.Status]bool{
		order.Delivered: true,
		order.Cancelled: true,
		order.Returned:  true,
	}

	for _, s := range order.Statuses() {
		assert.Equal(t, terminal[s], s.IsTerminal(), s.String())
	}
	assert.False(t, order.Unknown.IsTerminal())
}

func TestStatus_TextMarshalling(t *testing.T) {
	t.Run("should marshal canonical name", func(t *testing.T) {
		text, err := order.InProgress.MarshalText()

		require.NoError(t, err)
		assert.Equal(t, "InProgress", string(text))
	})

	t.Run("should refuse to marshal Unknown", func(t *testing.T) {
		_, err := order.Unknown.MarshalText()
		require.Error(t, err)
	})

	t.Run("should unmarshal case-insensitively", func(t *testing.T) {
		var s order.Status
		require.NoError(t, s.UnmarshalText([]byte("cancelled")))
		assert.Equal(t, order.Cancelled, s)
	})
}
