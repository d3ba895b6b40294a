package ineed

import (
	"io"
	"strings"

	"github.com/ahmadbky/ineed/format"
)

// Separated returns a promptable asking for any amount of values of type T,
// separated by sep. Each value is trimmed and parsed the same way as Written.
//
// The input is invalid if it is empty or if any of the values is invalid.
//
// Example:
//
//	grades := ineed.Until(ineed.Separated[uint8]("Your grades, separated by ';'", ";"),
//		func(grades []uint8) bool {
//			return !slices.ContainsFunc(grades, func(g uint8) bool { return g > 20 })
//		})
func Separated[T any](msg, sep string) Promptable[[]T, format.WrittenRules] {
	return &separated[T]{
		msg:   message{text: msg},
		sep:   sep,
		parse: newParser[T](),
	}
}

type separated[T any] struct {
	msg   message
	sep   string
	parse parser[T]
}

func (s *separated[T]) PromptOnce(in LineReader, out io.Writer, rules format.WrittenRules) (Outcome[[]T], error) {
	input, err := s.msg.promptLine(in, out, rules)
	if err != nil {
		return Retry[[]T](), err
	}
	if input == "" {
		return Retry[[]T](), nil
	}

	fields := strings.Split(input, s.sep)
	values := make([]T, 0, len(fields))
	for _, field := range fields {
		v, ok := s.parse(strings.TrimSpace(field))
		if !ok {
			return Retry[[]T](), nil
		}
		values = append(values, v)
	}
	return Accepted(values), nil
}
