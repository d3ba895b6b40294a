package ineed

import (
	"io"
	"testing"

	"github.com/ahmadbky/ineed/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected bool
		accepted bool
	}{
		{input: "y", expected: true, accepted: true},
		{input: "ye", expected: true, accepted: true},
		{input: "yes", expected: true, accepted: true},
		{input: "Y", expected: true, accepted: true},
		{input: "YeS", expected: true, accepted: true},
		{input: "yep", expected: true, accepted: true},
		{input: "true", expected: true, accepted: true},
		{input: "n", expected: false, accepted: true},
		{input: "N", expected: false, accepted: true},
		{input: "no", expected: false, accepted: true},
		{input: "nop", expected: false, accepted: true},
		{input: "nOpE", expected: false, accepted: true},
		{input: "nopp", expected: false, accepted: true},
		{input: "nah", expected: false, accepted: true},
		{input: "  false  ", expected: false, accepted: true},
		{input: "", accepted: false},
		{input: "yess", accepted: false},
		{input: "maybe", accepted: false},
		{input: "1", accepted: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			outcome, err := Bool("").PromptOnce(lines(tt.input+"\n"), io.Discard, format.WrittenRules{})
			require.NoError(t, err)

			v, ok := outcome.Get()
			assert.Equal(t, tt.accepted, ok)
			if tt.accepted {
				assert.Equal(t, tt.expected, v)
			}
		})
	}
}
