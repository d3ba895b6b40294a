package ineed

import (
	"io"

	"github.com/ahmadbky/ineed/format"
)

// Then chains two promptables. The output holds the value of first, then the
// value of second.
//
// If the input for first is invalid, the whole chain is tried again from the
// start. Once first accepted an input, second is prompted until it accepts one
// too, without prompting first again.
//
// Chains nest to the left: Then(Then(a, b), c) outputs
// Tuple2[Tuple2[A, B], C]. Use Flatten3 and its siblings to get a flat tuple.
//
// Rules declared on a chain with Formatted are given to both sides, and each
// side keeps the rules it accepts. Rules declared on a side take precedence
// over the rules declared on the chain.
//
// Example:
//
//	user, err := ineed.Run(ineed.Then(
//		ineed.Written[string]("Your username"),
//		ineed.Written[uint8]("Your age"),
//	))
//	if err != nil {
//		log.Fatal(err)
//	}
//	name, age := user.Values()
func Then[A, B any, RA format.Rules[RA], RB format.Rules[RB]](first Promptable[A, RA], second Promptable[B, RB]) Promptable[Tuple2[A, B], format.ThenRules[RA, RB]] {
	return &then[A, B, RA, RB]{first: first, second: second}
}

type then[A, B any, RA format.Rules[RA], RB format.Rules[RB]] struct {
	first  Promptable[A, RA]
	second Promptable[B, RB]
}

func (t *then[A, B, RA, RB]) PromptOnce(in LineReader, out io.Writer, rules format.ThenRules[RA, RB]) (Outcome[Tuple2[A, B]], error) {
	outcome, err := t.first.PromptOnce(in, out, rules.First)
	if err != nil {
		return Retry[Tuple2[A, B]](), err
	}
	a, ok := outcome.Get()
	if !ok {
		return Retry[Tuple2[A, B]](), nil
	}

	for {
		outcome, err := t.second.PromptOnce(in, out, rules.Second)
		if err != nil {
			return Retry[Tuple2[A, B]](), err
		}
		if b, ok := outcome.Get(); ok {
			return Accepted(Tuple2[A, B]{V1: a, V2: b}), nil
		}
	}
}
