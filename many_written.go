package ineed

import (
	"io"
	"strings"

	"github.com/ahmadbky/ineed/format"
)

// manyWritten asks for exactly n values separated by sep, and converts the
// trimmed fields with convert.
type manyWritten[T any] struct {
	msg     message
	sep     string
	n       int
	convert func(fields []string) (T, bool)
}

func (m *manyWritten[T]) PromptOnce(in LineReader, out io.Writer, rules format.WrittenRules) (Outcome[T], error) {
	input, err := m.msg.promptLine(in, out, rules)
	if err != nil {
		return Retry[T](), err
	}

	fields := strings.Split(input, m.sep)
	if len(fields) != m.n {
		return Retry[T](), nil
	}
	for i, field := range fields {
		fields[i] = strings.TrimSpace(field)
	}

	if v, ok := m.convert(fields); ok {
		return Accepted(v), nil
	}
	return Retry[T](), nil
}

// ManyWritten2 returns a promptable asking for two values separated by sep.
// Each value is trimmed and parsed the same way as Written, and the input is
// invalid unless it holds exactly two valid values.
//
// Example:
//
//	user, err := ineed.Run(ineed.ManyWritten2[string, uint8]("Your name and age, separated by ','", ","))
func ManyWritten2[A, B any](msg, sep string) Promptable[Tuple2[A, B], format.WrittenRules] {
	pa, pb := newParser[A](), newParser[B]()
	return &manyWritten[Tuple2[A, B]]{
		msg: message{text: msg},
		sep: sep,
		n:   2,
		convert: func(fields []string) (t Tuple2[A, B], ok bool) {
			if t.V1, ok = pa(fields[0]); !ok {
				return t, false
			}
			t.V2, ok = pb(fields[1])
			return t, ok
		},
	}
}

// ManyWritten3 is ManyWritten2 for three values.
func ManyWritten3[A, B, C any](msg, sep string) Promptable[Tuple3[A, B, C], format.WrittenRules] {
	pa, pb, pc := newParser[A](), newParser[B](), newParser[C]()
	return &manyWritten[Tuple3[A, B, C]]{
		msg: message{text: msg},
		sep: sep,
		n:   3,
		convert: func(fields []string) (t Tuple3[A, B, C], ok bool) {
			if t.V1, ok = pa(fields[0]); !ok {
				return t, false
			}
			if t.V2, ok = pb(fields[1]); !ok {
				return t, false
			}
			t.V3, ok = pc(fields[2])
			return t, ok
		},
	}
}

// ManyWritten4 is ManyWritten2 for four values.
func ManyWritten4[A, B, C, D any](msg, sep string) Promptable[Tuple4[A, B, C, D], format.WrittenRules] {
	pa, pb, pc, pd := newParser[A](), newParser[B](), newParser[C](), newParser[D]()
	return &manyWritten[Tuple4[A, B, C, D]]{
		msg: message{text: msg},
		sep: sep,
		n:   4,
		convert: func(fields []string) (t Tuple4[A, B, C, D], ok bool) {
			if t.V1, ok = pa(fields[0]); !ok {
				return t, false
			}
			if t.V2, ok = pb(fields[1]); !ok {
				return t, false
			}
			if t.V3, ok = pc(fields[2]); !ok {
				return t, false
			}
			t.V4, ok = pd(fields[3])
			return t, ok
		},
	}
}
