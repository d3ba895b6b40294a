// Package main demonstrates how to customize the format of a whole chain.
//
// The rules given to a chain apply to every prompt of the chain that accepts
// them. A prompt of the chain can still be customized on its own: its rules
// take precedence over the rules of the chain.
package main

import (
	"fmt"
	"log"

	"github.com/ahmadbky/ineed"
	"github.com/ahmadbky/ineed/format"
)

type level string

func main() {
	lvl := ineed.Selected("Your level",
		ineed.Choice("Good", level("good")),
		ineed.Choice("Medium", level("medium")),
		ineed.Choice("Bad", level("bad")),
	)

	user, err := ineed.Run(ineed.Formatted(ineed.Then(
		ineed.Written[string]("Your name"),
		// The list surrounds only apply to the selection list, and this input
		// prefix wins over the one of the chain.
		ineed.Formatted(lvl, format.New().InputPrefix("> ").ListSurrounds("<", "> ")),
	), format.New().InputPrefix(">> ").MsgPrefix("-> ")))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("name=%s\n", user.V1)
	fmt.Printf("level=%s\n", user.V2)
}
