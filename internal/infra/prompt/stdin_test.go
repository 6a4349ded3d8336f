package prompt

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStdinPrompter_PromptCode(t *testing.T) {
	prompter := &stdinPrompter{in: strings.NewReader("  123456  \n"), out: io.Discard}

	code, err := prompter.PromptCode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "123456", code)
}

func TestStdinPrompter_LastLineWithoutNewline(t *testing.T) {
	prompter := &stdinPrompter{in: strings.NewReader("123456"), out: io.Discard}

	code, err := prompter.PromptCode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "123456", code)
}

func TestStdinPrompter_EmptyInput(t *testing.T) {
	prompter := &stdinPrompter{in: strings.NewReader("\n"), out: io.Discard}

	_, err := prompter.PromptCode(context.Background())
	require.Error(t, err)
}

func TestStdinPrompter_ClosedInput(t *testing.T) {
	prompter := &stdinPrompter{in: strings.NewReader(""), out: io.Discard}

	_, err := prompter.PromptCode(context.Background())
	require.Error(t, err)
}

func TestStdinPrompter_ContextCancelled(t *testing.T) {
	// A reader that never produces input.
	blocked, _ := io.Pipe()
	prompter := &stdinPrompter{in: blocked, out: io.Discard}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := prompter.PromptCode(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
