package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeParseError(t *testing.T) {
	err := NewTimestampError("blah")
	assert.Equal(t, "invalid timestamp 'blah': could not parse time", err.Error())
	assert.Contains(t, err.Examples, "yesterday")
}

func TestTimeParseErrorToUserError(t *testing.T) {
	t.Run("keeps_suggestion", func(t *testing.T) {
		ue := NewTimestampError("blah").ToUserError()
		assert.Equal(t, "timestamp", ue.Field)
		assert.Equal(t, "blah", ue.Value)
		assert.Contains(t, ue.Suggestion, "yesterday")
	})

	t.Run("falls_back_to_examples", func(t *testing.T) {
		e := &TimeParseError{
			Input:    "x",
			Field:    "since",
			Message:  "bad",
			Examples: []string{"a", "b", "c", "d"},
		}
		assert.Equal(t, "Try: a, b, c", e.ToUserError().Suggestion)
	})
}

func TestParseCompanyID(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"1", 1},
		{"1700000000000", 1700000000000},
		{" 42 ", 42},
		{"#7", 7},
	}
	for _, tt := range tests {
		id, err := ParseCompanyID(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, id)
	}
}

func TestParseIDInvalid(t *testing.T) {
	for _, input := range []string{"", "abc", "0", "-3", "1.5"} {
		_, err := ParseCompanyID(input)
		require.Error(t, err, input)

		var idErr *IDError
		require.ErrorAs(t, err, &idErr)
		assert.Equal(t, "company", idErr.Kind)
	}

	_, err := ParseCommentID("x")
	var idErr *IDError
	require.ErrorAs(t, err, &idErr)
	ue := idErr.ToUserError()
	assert.Equal(t, "note", ue.Field)
	assert.Contains(t, ue.Suggestion, "ctt notes")
}
