package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

const (
	DefaultPrompt       = "Enter number of iterations: "
	DefaultPreviewLimit = 10
)

var (
	// ErrInvalidInteger represents input that does not parse as a 32-bit integer.
	ErrInvalidInteger = errors.New("invalid integer")
)

type options struct {
	color bool
}

type Option func(*options)

// WithColor enables colored verdict output regardless of the terminal state.
func WithColor(enabled bool) Option {
	return func(o *options) {
		o.color = enabled
	}
}

type Interface struct {
	reader  *bufio.Reader
	writer  *bufio.Writer
	options options
}

func NewInterface(in io.Reader, out io.Writer, opts ...Option) *Interface {
	i := &Interface{
		reader: bufio.NewReader(in),
		writer: bufio.NewWriter(out),
	}
	for _, f := range opts {
		f(&i.options)
	}
	return i
}

// PromptInt writes message, then reads and parses a single line. There is no
// retry on bad input.
func (i *Interface) PromptInt(message string) (int32, error) {
	if _, err := i.writer.WriteString(message); err != nil {
		return 0, err
	}
	if err := i.writer.Flush(); err != nil {
		return 0, err
	}

	line, err := i.reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return 0, fmt.Errorf("read input: %w", err)
	}
	line = strings.TrimSpace(line)

	value, err := strconv.ParseInt(line, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInteger, line)
	}
	return int32(value), nil
}

// FormatPreview renders at most limit leading elements of seq as "[a b c]".
func FormatPreview[T any](seq []T, limit int) string {
	n := len(seq)
	if limit < n {
		n = limit
	}

	builder := strings.Builder{}
	_, _ = builder.WriteRune('[')
	for idx := 0; idx < n; idx++ {
		if idx > 0 {
			_, _ = builder.WriteRune(' ')
		}
		_, _ = builder.WriteString(fmt.Sprint(seq[idx]))
	}
	_, _ = builder.WriteRune(']')
	return builder.String()
}

func (i *Interface) Preview(seq []int32, limit int) error {
	return i.println(FormatPreview(seq, limit))
}

func (i *Interface) Verdict(sorted bool) error {
	result := strconv.FormatBool(sorted)
	if i.options.color {
		c := color.New(color.FgRed)
		if sorted {
			c = color.New(color.FgGreen)
		}
		c.EnableColor()
		result = c.Sprint(result)
	}
	return i.println(fmt.Sprintf("\nIs this vector sorted?\n  > %s", result))
}

func (i *Interface) println(a ...any) error {
	if _, err := fmt.Fprintln(i.writer, a...); err != nil {
		return err
	}
	return i.writer.Flush()
}
