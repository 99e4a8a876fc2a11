package providers

import (
	"context"
	"sync"
)

// Fake is a canned provider for tests. It records the prompts it receives.
type Fake struct {
	Output string
	Err    error

	mu      sync.Mutex
	prompts []string
}

// Name returns the provider name.
func (f *Fake) Name() string {
	return "fake"
}

// Generate records the prompt and returns the canned output or error.
func (f *Fake) Generate(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.prompts = append(f.prompts, prompt)

	return f.Output, f.Err
}

// Calls returns how many times Generate was invoked.
func (f *Fake) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.prompts)
}

// LastPrompt returns the most recent prompt, or "" if none was recorded.
func (f *Fake) LastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.prompts) == 0 {
		return ""
	}

	return f.prompts[len(f.prompts)-1]
}
