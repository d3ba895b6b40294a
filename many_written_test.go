package ineed

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManyWritten(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected Tuple3[string, int, bool]
	}{
		{
			name:     "all good inputs",
			input:    "foo, 1, true\n",
			expected: Tuple3[string, int, bool]{V1: "foo", V2: 1, V3: true},
		},
		{
			name:     "inputs are trimmed",
			input:    "foo, 1   ,    true\n",
			expected: Tuple3[string, int, bool]{V1: "foo", V2: 1, V3: true},
		},
		{
			name:     "any invalid input",
			input:    "foo, beg, true\nbar, 1, wow\nboor, 2, false\n",
			expected: Tuple3[string, int, bool]{V1: "boor", V2: 2, V3: false},
		},
		{
			name:     "wrong amount of values",
			input:    "foo, 1\nfoo, 1, true, 2\nok, 3, false\n",
			expected: Tuple3[string, int, bool]{V1: "ok", V2: 3, V3: false},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			result, err := RunWith(ManyWritten3[string, int, bool]("msg", ", "), strings.NewReader(tt.input), &out)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestManyWrittenArities(t *testing.T) {
	t.Parallel()

	t.Run("two values", func(t *testing.T) {
		t.Parallel()

		result, err := RunWith(ManyWritten2[string, uint8]("", ","), strings.NewReader("bob,300\nbob,30\n"), &bytes.Buffer{})
		require.NoError(t, err)
		name, age := result.Values()
		assert.Equal(t, "bob", name)
		assert.Equal(t, uint8(30), age)
	})

	t.Run("four values", func(t *testing.T) {
		t.Parallel()

		result, err := RunWith(ManyWritten4[int, int, int, float64]("", " "), strings.NewReader("1 2 3 4.5\n"), &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, Tuple4[int, int, int, float64]{V1: 1, V2: 2, V3: 3, V4: 4.5}, result)
	})
}
