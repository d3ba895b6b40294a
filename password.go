package ineed

import (
	"io"

	"github.com/ahmadbky/ineed/format"
)

// Password returns a promptable asking for a password. The password is read
// from the controlling terminal without being echoed.
//
// The input stream given to the prompt is not used: the password is read
// directly from the terminal. An empty password is invalid.
//
// Example:
//
//	pass, err := ineed.Run(ineed.Password("Your password"))
func Password(msg string) Promptable[string, format.WrittenRules] {
	return PasswordWith(msg, newTerminalSecretReader())
}

// PasswordWith is Password reading the password with r.
func PasswordWith(msg string, r SecretReader) Promptable[string, format.WrittenRules] {
	return &password{msg: message{text: msg}, reader: r}
}

type password struct {
	msg    message
	reader SecretReader
}

func (p *password) PromptOnce(_ LineReader, out io.Writer, rules format.WrittenRules) (Outcome[string], error) {
	secret, err := p.msg.prompt(out, rules, p.reader.ReadSecret)
	if err != nil {
		return Retry[string](), err
	}
	if secret == "" {
		return Retry[string](), nil
	}
	return Accepted(secret), nil
}
