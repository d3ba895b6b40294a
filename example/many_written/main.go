// Package main demonstrates how to ask for many values on a single line.
package main

import (
	"fmt"
	"log"

	"github.com/ahmadbky/ineed"
)

func main() {
	user, err := ineed.Run(ineed.Until(ineed.ManyWritten2[string, int]("Name, age", ","),
		func(user ineed.Tuple2[string, int]) bool {
			return user.V2 > 5 && user.V2 < 120
		}))
	if err != nil {
		log.Fatal(err)
	}

	name, age := user.Values()
	fmt.Printf("name=%s\n", name)
	fmt.Printf("age=%d\n", age)
}
