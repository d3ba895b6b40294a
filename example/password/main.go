// Package main demonstrates how to ask for a password and its confirmation.
package main

import (
	"fmt"
	"log"

	"github.com/ahmadbky/ineed"
	"github.com/ahmadbky/ineed/format"
)

func main() {
	passwords := ineed.Formatted(ineed.Then(
		ineed.Password("Your new password"),
		ineed.Password("Confirm"),
	), format.New().RepeatPrompt(true))

	confirmed := ineed.Until(passwords, func(p ineed.Tuple2[string, string]) bool {
		return p.V1 == p.V2
	})

	password, err := ineed.Run(ineed.Map(confirmed, func(p ineed.Tuple2[string, string]) string {
		return p.V1
	}))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("We have safely registered your new password (%d characters)\n", len(password))
}
