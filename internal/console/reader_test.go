package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPrompt_WritesPromptAndReadsLine(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer
	r := NewReader(strings.NewReader("hello\r\nworld\n"), &out)

	s, err := r.Prompt(ctx, "You: ")
	require.NoError(t, err)
	require.Equal(t, "hello", s)

	s, err = r.Prompt(ctx, "")
	require.NoError(t, err)
	require.Equal(t, "world", s)
	require.Equal(t, "You: ", out.String())

	_, err = r.Prompt(ctx, "You: ")
	require.ErrorIs(t, err, io.EOF)

	_, err = r.Prompt(ctx, "You: ")
	require.ErrorIs(t, err, io.EOF)
}

func TestPrompt_LastLineWithoutNewline(t *testing.T) {
	ctx := context.Background()
	r := NewReader(strings.NewReader("tail"), io.Discard)

	s, err := r.Prompt(ctx, "")
	require.NoError(t, err)
	require.Equal(t, "tail", s)

	_, err = r.Prompt(ctx, "")
	require.ErrorIs(t, err, io.EOF)
}

func TestPrompt_VeryLongLine(t *testing.T) {
	ctx := context.Background()
	long := strings.Repeat("a", 2*1024*1024)
	r := NewReader(strings.NewReader(long+"\nbye\n"), io.Discard)

	s, err := r.Prompt(ctx, "")
	require.NoError(t, err)
	require.Len(t, s, len(long))

	s, err = r.Prompt(ctx, "")
	require.NoError(t, err)
	require.Equal(t, "bye", s)
}

func TestPrompt_ReturnsWhenContextCanceled(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })
	r := NewReader(pr, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := r.Prompt(ctx, "You: ")
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("prompt did not return after cancel")
	}
}

func TestPromptInt(t *testing.T) {
	ctx := context.Background()
	r := NewReader(strings.NewReader(" 3 \nabc\n2.5\n"), io.Discard)

	n, err := r.PromptInt(ctx, "")
	require.NoError(t, err)
	require.Equal(t, 3, n)

	_, err = r.PromptInt(ctx, "")
	require.ErrorIs(t, err, ErrInvalidNumber)

	_, err = r.PromptInt(ctx, "")
	require.ErrorIs(t, err, ErrInvalidNumber)

	_, err = r.PromptInt(ctx, "")
	require.ErrorIs(t, err, io.EOF)
}

func TestPromptFloat(t *testing.T) {
	ctx := context.Background()
	r := NewReader(strings.NewReader("87.5\n90\nNaN\nInf\nx\n"), io.Discard)

	f, err := r.PromptFloat(ctx, "")
	require.NoError(t, err)
	require.Equal(t, 87.5, f)

	f, err = r.PromptFloat(ctx, "")
	require.NoError(t, err)
	require.Equal(t, 90.0, f)

	for i := 0; i < 3; i++ {
		_, err = r.PromptFloat(ctx, "")
		require.ErrorIs(t, err, ErrInvalidNumber)
	}
}
