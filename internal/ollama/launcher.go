package ollama

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"
)

// Launcher starts the Ollama server and model as detached background
// processes and waits, bounded by a polling budget, for them to come up.
// The processes are not supervised beyond the startup wait and may outlive
// this tool.
type Launcher struct {
	Client *Client

	// Interval is the delay between readiness probes.
	Interval time.Duration
	// Attempts bounds the number of probes before giving up.
	Attempts int

	// Start launches a background process. Nil means startDetached;
	// tests inject a stub so nothing is actually spawned.
	Start func(name string, args ...string) error

	// Out receives progress messages. Nil means os.Stdout.
	Out io.Writer
}

// EnsureServer returns immediately when the server already answers the
// health probe. Otherwise it spawns `ollama serve` and polls until the
// server is ready or the attempt budget is exhausted.
func (l *Launcher) EnsureServer(ctx context.Context) error {
	if l.Client.ServerReady(ctx) {
		return nil
	}

	fmt.Fprintln(l.out(), "Starting Ollama server...")
	if err := l.start("ollama", "serve"); err != nil {
		return fmt.Errorf("failed to start ollama server: %w", err)
	}

	if !waitFor(func() bool { return l.Client.ServerReady(ctx) }, l.Interval, l.Attempts) {
		return fmt.Errorf("timeout: ollama server at %s did not become ready", l.Client.Host())
	}

	fmt.Fprintln(l.out(), "Ollama server is running.")
	return nil
}

// EnsureModel follows the same spawn-and-poll pattern as EnsureServer,
// against the model readiness probe and `ollama run <model>`.
func (l *Launcher) EnsureModel(ctx context.Context) error {
	if l.Client.ModelReady(ctx) {
		return nil
	}

	fmt.Fprintf(l.out(), "Starting model %q...\n", l.Client.Model())
	if err := l.start("ollama", "run", l.Client.Model()); err != nil {
		return fmt.Errorf("failed to start model %s: %w", l.Client.Model(), err)
	}

	if !waitFor(func() bool { return l.Client.ModelReady(ctx) }, l.Interval, l.Attempts) {
		return fmt.Errorf("timeout: model %q failed to load", l.Client.Model())
	}

	fmt.Fprintln(l.out(), "Model is ready.")
	return nil
}

func (l *Launcher) start(name string, args ...string) error {
	if l.Start != nil {
		return l.Start(name, args...)
	}
	return startDetached(name, args...)
}

func (l *Launcher) out() io.Writer {
	if l.Out != nil {
		return l.Out
	}
	return os.Stdout
}

// startDetached launches a process with its output discarded and releases
// it so it keeps running independent of this tool's lifetime.
func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

// waitFor polls ready at the given interval until it reports true or the
// attempt budget is exhausted.
func waitFor(ready func() bool, interval time.Duration, attempts int) bool {
	for i := 0; i < attempts; i++ {
		if ready() {
			return true
		}
		time.Sleep(interval)
	}
	return false
}
