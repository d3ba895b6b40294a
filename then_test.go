package ineed

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		input          string
		expected       Tuple2[int, int]
		expectedOutput string
	}{
		{
			name:           "good inputs",
			input:          "5\n7\n",
			expected:       Tuple2[int, int]{V1: 5, V2: 7},
			expectedOutput: "- A\n> - B\n> ",
		},
		{
			name:           "second side is retried alone",
			input:          "5\ninvalid\ninvalid\n7\n",
			expected:       Tuple2[int, int]{V1: 5, V2: 7},
			expectedOutput: "- A\n> - B\n> > > ",
		},
		{
			name:           "first side restarts the chain",
			input:          "x\n1\n2\n",
			expected:       Tuple2[int, int]{V1: 1, V2: 2},
			expectedOutput: "- A\n> > - B\n> ",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			result, err := RunWith(Then(Written[int]("A"), Written[int]("B")), strings.NewReader(tt.input), &out)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
			assert.Equal(t, tt.expectedOutput, out.String())
		})
	}
}

func TestThenNested(t *testing.T) {
	t.Parallel()

	p := Then(Then(Written[string]("name"), Bool("ok?")), Separated[int]("nums", ","))
	result, err := RunWith(p, strings.NewReader("bob\nmaybe\nyes\n1,2\n"), &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "bob", result.V1.V1)
	assert.True(t, result.V1.V2)
	assert.Equal(t, []int{1, 2}, result.V2)
}

func TestThenMaxTriesOnChain(t *testing.T) {
	t.Parallel()

	p := MaxTries(Then(Written[int]("A"), Written[int]("B")), 2)
	result, err := RunWith(p, strings.NewReader("x\ny\n1\n2\n"), &bytes.Buffer{})

	require.NoError(t, err)
	assert.ErrorIs(t, result.Err, ErrMaxTriesExceeded)
}
