package ineed

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ahmadbky/ineed/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbers() Promptable[int, format.SelectedRules] {
	return Selected("booga",
		Choice("foo", 1000),
		Choice("bar", 2000),
		Choice("foobar", 3000),
	)
}

func TestSelected(t *testing.T) {
	t.Parallel()

	custom := format.New().
		MsgPrefix("-> ").
		InputPrefix(": ").
		RepeatPrompt(true).
		BreakLine(false).
		ListSurrounds("<", "> ").
		ListMsgPos(format.Bottom)

	tests := []struct {
		name           string
		fmt            format.Fmt
		input          string
		expected       int
		expectedOutput string
	}{
		{
			name:     "valid input",
			input:    "3\n",
			expected: 3000,
			expectedOutput: "[1] - foo\n" +
				"[2] - bar\n" +
				"[3] - foobar\n" +
				"- booga\n" +
				"> ",
		},
		{
			name:     "invalid inputs",
			input:    "boo\n400\n-43\n0\n1\n",
			expected: 1000,
			expectedOutput: "[1] - foo\n" +
				"[2] - bar\n" +
				"[3] - foobar\n" +
				"- booga\n" +
				"> > > > > ",
		},
		{
			name:     "top title",
			fmt:      format.New().ListMsgPos(format.Top),
			input:    "x\n2\n",
			expected: 2000,
			expectedOutput: "- booga\n" +
				"[1] - foo\n" +
				"[2] - bar\n" +
				"[3] - foobar\n" +
				"> > ",
		},
		{
			name:     "top title without line break and repeat prompt",
			fmt:      format.New().ListMsgPos(format.Top).BreakLine(false).RepeatPrompt(true),
			input:    "boo\nbam\nbim\n1\n",
			expected: 1000,
			expectedOutput: "- booga\n" +
				"[1] - foo\n" +
				"[2] - bar\n" +
				"[3] - foobar\n" +
				"> " +
				"- booga> " +
				"- booga> " +
				"- booga> ",
		},
		{
			name:     "top title with line break and repeat prompt",
			fmt:      format.New().ListMsgPos(format.Top).BreakLine(true).RepeatPrompt(true),
			input:    "boo\nbam\nbim\n1\n",
			expected: 1000,
			expectedOutput: "- booga\n" +
				"[1] - foo\n" +
				"[2] - bar\n" +
				"[3] - foobar\n" +
				"> " +
				"- booga\n> " +
				"- booga\n> " +
				"- booga\n> ",
		},
		{
			name:     "fully customized format",
			fmt:      custom,
			input:    "1\n",
			expected: 1000,
			expectedOutput: "<1> foo\n" +
				"<2> bar\n" +
				"<3> foobar\n" +
				"-> booga: ",
		},
		{
			name:     "fully customized format with invalid inputs",
			fmt:      custom,
			input:    "bim\n0\n-1\n344\n1\n",
			expected: 1000,
			expectedOutput: "<1> foo\n" +
				"<2> bar\n" +
				"<3> foobar\n" +
				"-> booga: -> booga: -> booga: -> booga: -> booga: ",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			result, err := RunWith(Formatted(numbers(), tt.fmt), strings.NewReader(tt.input), &out)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
			assert.Equal(t, tt.expectedOutput, out.String())
		})
	}
}

func TestSelectedSameItemTwice(t *testing.T) {
	t.Parallel()

	p := Until(numbers(), func(n int) bool { return n == 2000 })
	result, err := RunWith(p, strings.NewReader("1\n1\n2\n"), &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, 2000, result)
}

func TestSelectedEmptyList(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { Selected[string]("nothing") })
}
