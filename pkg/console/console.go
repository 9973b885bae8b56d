// Package console reads prompted lines from an input stream and writes menu
// text to an output stream.
//
// Numeric reads never fail on malformed text: they print InvalidNumber and
// ask again. The only error a read returns is the underlying stream error,
// io.EOF once input is exhausted.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidInput describes a line that does not parse as the requested type.
var ErrInvalidInput = errors.New("invalid input")

const (
	InvalidNumber = "Invalid input, please enter a whole number."
	InvalidPrice  = "Invalid input, please enter a non-negative price."
)

// IO is a prompting reader/writer pair.
type IO struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *IO {
	return &IO{in: bufio.NewReader(in), out: out}
}

func (c *IO) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *IO) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// ReadLine prints prompt and returns the next line without its terminator.
// A final line lacking a newline is still returned; io.EOF comes after it.
func (c *IO) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)

	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadInt prompts until a line parses as an integer.
func (c *IO) ReadInt(prompt string) (int, error) {
	for {
		line, err := c.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := ParseInt(line)
		if err == nil {
			return n, nil
		}
		c.Println(InvalidNumber)
	}
}

// ReadPrice prompts until a line parses as a finite, non-negative number.
func (c *IO) ReadPrice(prompt string) (float64, error) {
	for {
		line, err := c.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		p, err := ParsePrice(line)
		if err == nil {
			return p, nil
		}
		c.Println(InvalidPrice)
	}
}

// ParseInt parses a menu selection, ignoring surrounding whitespace.
func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidInput)
	}
	return n, nil
}

// ParsePrice parses a decimal price.
func ParsePrice(s string) (float64, error) {
	p, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidInput)
	}
	return p, nil
}
