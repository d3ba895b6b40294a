// Package ineed provides composable prompts for console programs.
//
// A prompt is a Promptable: a unit that makes a single attempt at reading a
// value from the user, and tells whether the input was accepted or whether it
// must be tried again. Invalid input is never an error: the prompt is simply
// displayed again. Only I/O failures abort a run.
//
// Leaf Prompts:
//
//   - Written: a single value of any text-parsable type
//   - Bool: a yes or no answer
//   - Password: a secret read without echo
//   - Selected: an item among a numbered list
//   - Separated: any amount of values of the same type
//   - ManyWritten2, ManyWritten3, ManyWritten4: a fixed amount of values
//
// Combinators:
//
//   - Then: chains two prompts, and outputs both values in a Tuple2
//   - Flatten3 to Flatten10: flattens the nested tuples of a chain
//   - Map: transforms the accepted value
//   - Until: rejects the values failing a predicate
//   - MaxTries: limits the amount of tries
//   - Formatted and WithRules: attach format rules
//
// Quick Start:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//
//		"github.com/ahmadbky/ineed"
//	)
//
//	func main() {
//		user, err := ineed.Run(ineed.Then(
//			ineed.Written[string]("Your name"),
//			ineed.Until(ineed.Written[int]("Your age"), func(age int) bool {
//				return age > 0
//			}),
//		))
//		if err != nil {
//			log.Fatal(err)
//		}
//		name, age := user.Values()
//		fmt.Printf("Hello %s, you are %d\n", name, age)
//	}
//
// Formatting:
//
// The way a prompt is displayed is driven by format rules, declared with the
// format package and attached with Formatted. Rules attached to a prompt take
// precedence over the rules attached to a chain it belongs to, and the latest
// setting of a rule wins within a single format.Fmt:
//
//	p := ineed.Formatted(ineed.Then(
//		ineed.Written[string]("Your name"),
//		ineed.Formatted(ineed.Written[int]("Your age"), format.New().InputPrefix("? ")),
//	), format.New().InputPrefix(": ").BreakLine(false))
//
// Here the name is read after ": ", and the age after "? ". Neither message is
// followed by a line break.
//
// Run reads the standard input and writes the standard output by default. On
// Windows, the output goes through go-colorable. Use WithInput and WithOutput,
// or RunWith, to prompt on other streams.
package ineed
