package ineed

import (
	"io"
	"slices"
	"strings"

	"github.com/ahmadbky/ineed/format"
)

var (
	trueInputs  = []string{"y", "ye", "yes", "yep", "true"}
	falseInputs = []string{"n", "no", "nop", "nope", "nopp", "nah", "false"}
)

// Bool returns a promptable asking for a yes or no answer.
//
// The answer is case-insensitive: "y", "yes", "yep" or "true" give true, and
// "n", "no", "nope", "nah" or "false" give false. Any other answer is invalid.
//
// Example:
//
//	ok, err := ineed.Run(ineed.Bool("Do you like Go?"))
func Bool(msg string) Promptable[bool, format.WrittenRules] {
	return &boolean{msg: message{text: msg}}
}

type boolean struct {
	msg message
}

func (b *boolean) PromptOnce(in LineReader, out io.Writer, rules format.WrittenRules) (Outcome[bool], error) {
	input, err := b.msg.promptLine(in, out, rules)
	if err != nil {
		return Retry[bool](), err
	}

	input = strings.ToLower(input)
	switch {
	case slices.Contains(trueInputs, input):
		return Accepted(true), nil
	case slices.Contains(falseInputs, input):
		return Accepted(false), nil
	default:
		return Retry[bool](), nil
	}
}
