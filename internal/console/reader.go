// Package console reads prompted input one line at a time.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"sync"
)

// ErrInvalidNumber means the line could not be parsed as a number. The
// caller is expected to re-prompt.
var ErrInvalidNumber = errors.New("console: invalid number")

type line struct {
	text string
	err  error
}

// Reader prompts on out and reads lines of any length from in. Lines are
// read on a background goroutine so a pending prompt can be abandoned when
// its context is done.
type Reader struct {
	src   *bufio.Reader
	out   io.Writer
	lines chan line
	once  sync.Once
}

func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{
		src:   bufio.NewReader(in),
		out:   out,
		lines: make(chan line),
	}
}

func (r *Reader) start() {
	r.once.Do(func() {
		go r.readLoop()
	})
}

func (r *Reader) readLoop() {
	defer close(r.lines)
	for {
		s, err := r.src.ReadString('\n')
		if s != "" {
			r.lines <- line{text: strings.TrimRight(s, "\r\n")}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				r.lines <- line{err: fmt.Errorf("console: read: %w", err)}
			}
			return
		}
	}
}

// Prompt writes prompt without a newline and returns the next line with the
// line terminator removed. It returns io.EOF once input is exhausted and
// ctx.Err() if ctx is done first.
func (r *Reader) Prompt(ctx context.Context, prompt string) (string, error) {
	if prompt != "" {
		if _, err := io.WriteString(r.out, prompt); err != nil {
			return "", fmt.Errorf("console: write prompt: %w", err)
		}
	}
	r.start()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-r.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

// PromptInt reads a whole number. Malformed input yields ErrInvalidNumber.
func (r *Reader) PromptInt(ctx context.Context, prompt string) (int, error) {
	s, err := r.Prompt(ctx, prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return n, nil
}

// PromptFloat reads a decimal number. Malformed input, NaN and infinities
// yield ErrInvalidNumber.
func (r *Reader) PromptFloat(ctx context.Context, prompt string) (float64, error) {
	s, err := r.Prompt(ctx, prompt)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return f, nil
}
