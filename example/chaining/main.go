// Package main demonstrates how to chain prompts into a single one.
//
// If any input of the chain is invalid, the prompt it belongs to is repeated
// until the input is valid.
package main

import (
	"fmt"
	"log"

	"github.com/ahmadbky/ineed"
)

type level string

func main() {
	user, err := ineed.Run(ineed.Then(
		ineed.Written[string]("Your username"),
		ineed.Selected("Your level",
			ineed.Choice("Good", level("good")),
			ineed.Choice("Medium", level("medium")),
			ineed.Choice("Bad", level("bad")),
		),
	))
	if err != nil {
		log.Fatal(err)
	}

	username, lvl := user.Values()
	fmt.Printf("username=%s\n", username)
	fmt.Printf("level=%s\n", lvl)
}
