package service

import "context"

// CodePrompter obtains the SMS code from the human operator. The prompt
// blocks until input arrives or the context is cancelled.
type CodePrompter interface {
	PromptCode(ctx context.Context) (string, error)
}
