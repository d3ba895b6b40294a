// Package main demonstrates how to customize the format of a prompt many
// times. When rules conflict, the rule declared closest to the prompt wins.
package main

import (
	"fmt"
	"log"

	"github.com/ahmadbky/ineed"
	"github.com/ahmadbky/ineed/format"
)

func main() {
	// The input prefix is ">> ", as it is declared closest to the written prompt.
	age := ineed.Formatted(ineed.Written[uint8]("Your age"), format.New().InputPrefix(">> ").MsgPrefix("-> "))
	valid := ineed.Until(age, func(age uint8) bool {
		return age > 3 && age < 120
	})

	result, err := ineed.Run(ineed.Formatted(valid, format.New().InputPrefix("=> ").RepeatPrompt(true)))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("You are %d\n", result)
}
