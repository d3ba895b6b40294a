// Package main demonstrates basic usage of the ineed library.
package main

import (
	"fmt"
	"log"

	"github.com/ahmadbky/ineed"
	"github.com/ahmadbky/ineed/format"
)

type level int

const (
	good level = iota
	medium
	bad
)

func (l level) String() string {
	switch l {
	case good:
		return "Good"
	case medium:
		return "Medium"
	default:
		return "Bad"
	}
}

func main() {
	username, err := ineed.Run(ineed.Written[string]("Your username"))
	if err != nil {
		log.Fatal(err)
	}

	lvl, err := ineed.Run(ineed.Formatted(ineed.Selected("Your level",
		ineed.Choice("Foo", good),
		ineed.Choice("Bar", medium),
		ineed.Choice("Foobar", bad),
	), format.New().RepeatPrompt(true)))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("username=%s\n", username)
	fmt.Printf("level=%s\n", lvl)
}
