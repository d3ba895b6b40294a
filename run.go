package ineed

import (
	"bufio"
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/ahmadbky/ineed/format"
	"github.com/mattn/go-colorable"
)

// Config holds the streams used by Run.
type Config struct {
	Input  io.Reader // Input stream (nil for standard input)
	Output io.Writer // Output stream (nil for standard output)
}

// Option represents a configuration option for Run
type Option func(*Config)

// WithInput sets the input stream
func WithInput(r io.Reader) Option {
	return func(c *Config) {
		c.Input = r
	}
}

// WithOutput sets the output stream
func WithOutput(w io.Writer) Option {
	return func(c *Config) {
		c.Output = w
	}
}

// stdin is shared by every run reading the standard input, so that lines
// buffered by one run are not lost for the next one.
var stdin = sync.OnceValue(func() *bufio.Reader {
	return bufio.NewReader(os.Stdin)
})

func stdout() io.Writer {
	if runtime.GOOS == "windows" {
		// Use colorable for Windows ANSI support
		return colorable.NewColorableStdout()
	}
	return os.Stdout
}

// Run prompts p until it accepts an input and returns the accepted value.
//
// By default the standard input and output are used. Use WithInput and
// WithOutput to prompt from other streams.
//
// Example:
//
//	age, err := ineed.Run(ineed.Written[uint8]("Your age"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("You are %d\n", age)
func Run[T any, R format.Rules[R]](p Promptable[T, R], options ...Option) (T, error) {
	var config Config
	for _, option := range options {
		option(&config)
	}

	var in LineReader
	if config.Input == nil {
		in = stdin()
	} else {
		in = lineReader(config.Input)
	}
	out := config.Output
	if out == nil {
		out = stdout()
	}

	return run(p, in, out)
}

// RunWith prompts p on the given streams until it accepts an input.
func RunWith[T any, R format.Rules[R]](p Promptable[T, R], in io.Reader, out io.Writer) (T, error) {
	return run(p, lineReader(in), out)
}

func run[T any, R format.Rules[R]](p Promptable[T, R], in LineReader, out io.Writer) (T, error) {
	// The rules of the run are empty: every rule comes from the promptable itself.
	var rules R
	rules = rules.Apply(format.New())

	for {
		outcome, err := p.PromptOnce(in, out, rules)
		if err != nil {
			var zero T
			return zero, err
		}
		if v, ok := outcome.Get(); ok {
			return v, nil
		}
	}
}

func lineReader(r io.Reader) LineReader {
	if lr, ok := r.(LineReader); ok {
		return lr
	}
	return bufio.NewReader(r)
}
