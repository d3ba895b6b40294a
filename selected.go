package ineed

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ahmadbky/ineed/format"
)

// Item is an entry of a selection list.
type Item[T any] struct {
	Label string // Label is displayed in the list
	Value T      // Value is the output when the item is selected
}

// Choice returns an item displayed as label, giving value once selected.
func Choice[T any](label string, value T) Item[T] {
	return Item[T]{Label: label, Value: value}
}

// Selected returns a promptable asking to select an item among a list.
//
// The items are displayed once, numbered from 1, and the user answers with
// the number of an item. Any other answer is invalid. The position of the
// title relative to the list is set by the list_msg_pos rule, and the
// surrounds of the numbers by the list_surrounds rule.
//
// Selected panics if no item is given.
//
// Example:
//
//	lang, err := ineed.Run(ineed.Selected("Your favorite language",
//		ineed.Choice("Go", "go"),
//		ineed.Choice("Rust", "rust"),
//		ineed.Choice("Other", ""),
//	))
func Selected[T any](title string, items ...Item[T]) Promptable[T, format.SelectedRules] {
	if len(items) == 0 {
		panic("ineed: selection list is empty")
	}
	return &selected[T]{
		title: title,
		items: items,
		first: true,
	}
}

type selected[T any] struct {
	title      string
	items      []Item[T]
	first      bool
	titleShown bool
	listShown  bool
}

func (s *selected[T]) PromptOnce(in LineReader, out io.Writer, rules format.SelectedRules) (Outcome[T], error) {
	fmtRules := rules.Expand()
	if err := s.display(out, fmtRules); err != nil {
		return Retry[T](), err
	}
	s.first = false

	if _, err := fmt.Fprint(out, fmtRules.InputPrefix); err != nil {
		return Retry[T](), fmt.Errorf("failed to write input prefix: %w", err)
	}
	if err := flush(out); err != nil {
		return Retry[T](), err
	}

	input, err := readLine(in)
	if err != nil {
		return Retry[T](), err
	}
	i, err := strconv.Atoi(input)
	if err != nil || i < 1 || i > len(s.items) {
		return Retry[T](), nil
	}
	return Accepted(s.items[i-1].Value), nil
}

// display writes the title and the list, as far as they must be displayed on
// this attempt.
func (s *selected[T]) display(out io.Writer, rules format.ExpandedSelected) error {
	if rules.ListMsgPos == format.Top && s.first && !s.titleShown {
		if _, err := fmt.Fprintln(out, rules.MsgPrefix+s.title); err != nil {
			return fmt.Errorf("failed to write title: %w", err)
		}
		s.titleShown = !rules.RepeatPrompt
	}

	if !s.listShown {
		for i, item := range s.items {
			if _, err := fmt.Fprintf(out, "%s%d%s%s\n", rules.ListSurrounds.Open, i+1, rules.ListSurrounds.Close, item.Label); err != nil {
				return fmt.Errorf("failed to write list: %w", err)
			}
		}
		s.listShown = true
	}

	if (rules.ListMsgPos == format.Bottom || !s.first && rules.RepeatPrompt) && !s.titleShown {
		if _, err := fmt.Fprint(out, rules.MsgPrefix, s.title); err != nil {
			return fmt.Errorf("failed to write title: %w", err)
		}
		if rules.BreakLine {
			if _, err := fmt.Fprintln(out); err != nil {
				return fmt.Errorf("failed to write title: %w", err)
			}
		}
		s.titleShown = !rules.RepeatPrompt
	}
	return nil
}
