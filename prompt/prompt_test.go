package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RBaldassarre/worldaquatics-export/models"
)

var menuEvents = []models.RaceEvent{
	{ID: "w10", Name: "Women 10km", Gender: "F"},
	{ID: "m10", Name: "Men 10km", Gender: "M"},
	{ID: "x15", Name: "Mixed 4x1.5km Relay", Gender: "X"},
}

func TestTerminalSelector(t *testing.T) {
	t.Run("valid choice", func(t *testing.T) {
		var out bytes.Buffer
		s := NewTerminalSelector(strings.NewReader("2\n"), &out)

		got, err := s.Select(menuEvents)
		require.NoError(t, err)
		assert.Equal(t, "m10", got.ID)
		assert.Contains(t, out.String(), "1. Women 10km (F)")
		assert.Contains(t, out.String(), "3. Mixed 4x1.5km Relay (X)")
	})

	t.Run("retries until a valid index", func(t *testing.T) {
		var out bytes.Buffer
		s := NewTerminalSelector(strings.NewReader("0\nseven\n99\n3\n"), &out)

		got, err := s.Select(menuEvents)
		require.NoError(t, err)
		assert.Equal(t, "x15", got.ID)
	})

	t.Run("input closed before selection", func(t *testing.T) {
		var out bytes.Buffer
		s := NewTerminalSelector(strings.NewReader(""), &out)

		_, err := s.Select(menuEvents)
		assert.Error(t, err)
	})

	t.Run("no candidates", func(t *testing.T) {
		var out bytes.Buffer
		_, err := NewTerminalSelector(strings.NewReader("1\n"), &out).Select(nil)
		assert.Error(t, err)
	})
}

func TestFixedSelector(t *testing.T) {
	got, err := FixedSelector{Index: 1}.Select(menuEvents)
	require.NoError(t, err)
	assert.Equal(t, "m10", got.ID)

	_, err = FixedSelector{Index: 3}.Select(menuEvents)
	assert.Error(t, err)

	_, err = FixedSelector{Index: -1}.Select(menuEvents)
	assert.Error(t, err)
}
