package ineed

import (
	"io"

	"github.com/ahmadbky/ineed/format"
)

// MaxTries limits the amount of tries of p.
//
// The output becomes a Result: its Value is the accepted value of p, or its
// Err is ErrMaxTriesExceeded once p was tried limit times without accepting an
// input. The failing attempt does not write nor read anything.
//
// Example:
//
//	res, err := ineed.Run(ineed.MaxTries(ineed.Written[int]("Your number"), 3))
//	if err != nil {
//		log.Fatal(err)
//	}
//	n, err := res.Unwrap()
//	if errors.Is(err, ineed.ErrMaxTriesExceeded) {
//		fmt.Println("Too many tries")
//	}
func MaxTries[T any, R format.Rules[R]](p Promptable[T, R], limit int) Promptable[Result[T], R] {
	return &maxTries[T, R]{prompt: p, limit: limit}
}

type maxTries[T any, R format.Rules[R]] struct {
	prompt  Promptable[T, R]
	current int
	limit   int
}

func (m *maxTries[T, R]) PromptOnce(in LineReader, out io.Writer, rules R) (Outcome[Result[T]], error) {
	m.current++
	if m.current > m.limit {
		return Accepted(Result[T]{Err: ErrMaxTriesExceeded}), nil
	}

	outcome, err := m.prompt.PromptOnce(in, out, rules)
	if err != nil {
		return Retry[Result[T]](), err
	}
	if v, ok := outcome.Get(); ok {
		return Accepted(Result[T]{Value: v}), nil
	}
	return Retry[Result[T]](), nil
}

// Map transforms the accepted values of p with f.
//
// f must not fail: use Until beforehand to reject the values f cannot handle.
func Map[T, U any, R format.Rules[R]](p Promptable[T, R], f func(T) U) Promptable[U, R] {
	return &mapped[T, U, R]{prompt: p, f: f}
}

type mapped[T, U any, R format.Rules[R]] struct {
	prompt Promptable[T, R]
	f      func(T) U
}

func (m *mapped[T, U, R]) PromptOnce(in LineReader, out io.Writer, rules R) (Outcome[U], error) {
	outcome, err := m.prompt.PromptOnce(in, out, rules)
	if err != nil {
		return Retry[U](), err
	}
	if v, ok := outcome.Get(); ok {
		return Accepted(m.f(v)), nil
	}
	return Retry[U](), nil
}

// Until validates the accepted values of p with pred. A value for which pred
// returns false is treated as an invalid input, and p is tried again.
//
// The state of p is kept between tries: for example, the message of a written
// prompt is not displayed again unless the repeat_prompt rule is set.
//
// Example:
//
//	age := ineed.Until(ineed.Written[int]("Your age"), func(age int) bool {
//		return age > 3 && age < 120
//	})
func Until[T any, R format.Rules[R]](p Promptable[T, R], pred func(T) bool) Promptable[T, R] {
	return &until[T, R]{prompt: p, pred: pred}
}

type until[T any, R format.Rules[R]] struct {
	prompt Promptable[T, R]
	pred   func(T) bool
}

func (u *until[T, R]) PromptOnce(in LineReader, out io.Writer, rules R) (Outcome[T], error) {
	outcome, err := u.prompt.PromptOnce(in, out, rules)
	if err != nil {
		return Retry[T](), err
	}
	if v, ok := outcome.Get(); ok && u.pred(v) {
		return outcome, nil
	}
	return Retry[T](), nil
}

// Formatted attaches the rules declared by f to p.
//
// The attached rules take precedence over the rules declared further from p,
// for example on a chain p belongs to. Rules that p does not accept are
// ignored.
//
// Example:
//
//	age := ineed.Formatted(ineed.Written[int]("Your age"), format.New().
//		BreakLine(false).
//		InputPrefix(": "))
func Formatted[T any, R format.Rules[R]](p Promptable[T, R], f format.Fmt) Promptable[T, R] {
	var rules R
	return WithRules(p, rules.Apply(f))
}

// WithRules attaches a rule set to p. It is the explicit form of Formatted,
// useful to give distinct rules to each side of a chain.
//
// Example:
//
//	p := ineed.WithRules(ineed.Then(name, level), format.ThenRules[format.WrittenRules, format.SelectedRules]{
//		First:  format.Written(format.New().InputPrefix(": ")),
//		Second: format.Selected(format.New().ListSurrounds("(", ") ")),
//	})
func WithRules[T any, R format.Rules[R]](p Promptable[T, R], rules R) Promptable[T, R] {
	return &formatted[T, R]{prompt: p, rules: rules}
}

type formatted[T any, R format.Rules[R]] struct {
	prompt Promptable[T, R]
	rules  R
}

func (f *formatted[T, R]) PromptOnce(in LineReader, out io.Writer, rules R) (Outcome[T], error) {
	return f.prompt.PromptOnce(in, out, f.rules.Merge(rules))
}
