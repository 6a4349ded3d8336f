// Package prompt reads the SMS verification code interactively from stdin.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"soulclaim/internal/domain/service"

	"github.com/pkg/errors"
)

type stdinPrompter struct {
	in  io.Reader
	out io.Writer
}

// NewStdinPrompter returns a CodePrompter backed by the process stdin.
func NewStdinPrompter() service.CodePrompter {
	return &stdinPrompter{in: os.Stdin, out: os.Stdout}
}

// PromptCode blocks until a line arrives on stdin or ctx is cancelled. The
// read goroutine may outlive a cancelled call; stdin reads cannot be
// interrupted portably.
func (p *stdinPrompter) PromptCode(ctx context.Context) (string, error) {
	fmt.Fprint(p.out, "Enter the code from the SMS: ")

	type result struct {
		code string
		err  error
	}
	ch := make(chan result, 1)

	go func() {
		reader := bufio.NewReader(p.in)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			ch <- result{err: errors.Wrap(err, "read verification code")}

			return
		}
		ch <- result{code: strings.TrimSpace(line)}
	}()

	select {
	case <-ctx.Done():
		return "", errors.WithStack(ctx.Err())
	case res := <-ch:
		if res.err != nil {
			return "", res.err
		}
		if res.code == "" {
			return "", errors.New("empty verification code")
		}

		return res.code, nil
	}
}
