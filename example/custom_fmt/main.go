// Package main demonstrates how to customize the format of a prompt.
//
// Each prompt accepts its own set of rules. Written prompts accept a custom
// input prefix, but ignore the position of the message, which only applies
// to selection lists.
package main

import (
	"fmt"
	"log"

	"github.com/ahmadbky/ineed"
	"github.com/ahmadbky/ineed/format"
)

func main() {
	age, err := ineed.Run(ineed.Formatted(ineed.Written[uint8]("Your age"), format.New().
		BreakLine(false).
		InputPrefix(": ").
		RepeatPrompt(true)))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Got: %d\n", age)
}
