// Package main demonstrates a command line tool collecting a user profile,
// with a prompt style loaded from a YAML file.
//
// Example style file:
//
//	msg_prefix: "-> "
//	input_prefix: ": "
//	list_surrounds: ["(", ") "]
//	list_msg_pos: top
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/ahmadbky/ineed"
	"github.com/ahmadbky/ineed/format"
	"github.com/spf13/cobra"
)

var (
	stylePath string
	maxTries  int
)

var rootCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Collect a user profile interactively",
	Long: `onboard asks for a name, an age, a favorite language and a
newsletter subscription, then prints the collected profile.

The prompts can be styled with a YAML file given with --style.`,
	Args: cobra.NoArgs,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	RunE: runOnboard,
}

func init() {
	rootCmd.Flags().StringVarP(&stylePath, "style", "s", "", "path to a YAML prompt style file")
	rootCmd.Flags().IntVar(&maxTries, "max-tries", 3, "maximum amount of tries for the age")
}

func runOnboard(cmd *cobra.Command, _ []string) error {
	style := format.New()
	if stylePath != "" {
		var err error
		style, err = format.LoadStyle(stylePath)
		if err != nil {
			return err
		}
	}

	age := ineed.MaxTries(ineed.Until(ineed.Written[uint8]("Your age"), func(age uint8) bool {
		return age > 0 && age < 120
	}), maxTries)

	lang := ineed.Selected("Your favorite language",
		ineed.Choice("Go", "go"),
		ineed.Choice("Rust", "rust"),
		ineed.Choice("Other", "other"),
	)

	profile := ineed.Flatten4(ineed.Then(ineed.Then(ineed.Then(
		ineed.Written[string]("Your name"),
		age,
	), lang), ineed.Bool("Subscribe to the newsletter? (y/n)")))

	p, err := ineed.Run(ineed.Formatted(profile, style),
		ineed.WithInput(cmd.InOrStdin()),
		ineed.WithOutput(cmd.OutOrStdout()),
	)
	if err != nil {
		return err
	}

	name, ageResult, language, subscribed := p.Values()
	years, err := ageResult.Unwrap()
	if errors.Is(err, ineed.ErrMaxTriesExceeded) {
		return fmt.Errorf("no valid age given after %d tries", maxTries)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "name=%s\n", name)
	fmt.Fprintf(out, "age=%d\n", years)
	fmt.Fprintf(out, "language=%s\n", language)
	fmt.Fprintf(out, "newsletter=%t\n", subscribed)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
