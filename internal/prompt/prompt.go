package prompt

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Fallback is returned whenever the generation request fails; the run
// continues with this placeholder instead of aborting.
const Fallback = "Failed to generate commit message (no response)"

const template = `You are a helpful assistant that writes **only** clean, conventional git commit messages.

Guidelines:
- Respond with just the commit message.
- Start with a short summary line (max ~70 chars).
- Use imperative mood (e.g., "Fix crash", "Add support for...").
- Next lines should start with dashes and also use imperative.
- Do not include labels like "Commit message:", "Here is the message:", etc.
- Do not include explanations, apologies, or greetings.
- Output only the message, nothing else.

These are examples of previous commits:

%s

Now, based on the following diff, write only the commit message:

%s
`

// Build assembles the instruction prompt from the staged diff and the
// example messages. Examples may be empty; the template still holds.
func Build(diff string, examples []string) string {
	return fmt.Sprintf(template, strings.Join(examples, "\n\n"), diff)
}

// Completer produces a completion for a prompt. Satisfied by
// ollama.Client; tests substitute a stub.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Generator builds the prompt and submits it to the completion service.
type Generator struct {
	Completer Completer

	// Timeout bounds the generation request.
	Timeout time.Duration
	// Debug echoes the full prompt before submission.
	Debug bool
	// Out receives diagnostics. Nil means os.Stdout.
	Out io.Writer
}

// Generate returns the model's commit message for the diff. Any request
// failure degrades to the fixed Fallback string; it never returns an error.
func (g *Generator) Generate(ctx context.Context, diff string, examples []string) string {
	p := Build(diff, examples)
	if g.Debug {
		fmt.Fprintf(g.out(), "Prompt used by agent:\n%s\n", p)
	}

	if g.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.Timeout)
		defer cancel()
	}

	text, err := g.Completer.Complete(ctx, p)
	if err != nil {
		fmt.Fprintf(g.out(), "Error generating commit message: %v\n", err)
		return Fallback
	}
	return strings.TrimSpace(text)
}

func (g *Generator) out() io.Writer {
	if g.Out != nil {
		return g.Out
	}
	return os.Stdout
}
