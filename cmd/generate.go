package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/commait/commait/internal/commit"
	"github.com/commait/commait/internal/config"
	"github.com/commait/commait/internal/git"
	"github.com/commait/commait/internal/history"
	"github.com/commait/commait/internal/ollama"
	"github.com/commait/commait/internal/prompt"
	"github.com/spf13/cobra"
)

// startProcess overrides how background processes are spawned; tests stub
// it out so no real ollama process is started.
var startProcess func(name string, args ...string) error

func runGenerate(cmd *cobra.Command, args []string) error {
	if !git.IsGitRepo() {
		return fmt.Errorf("not a git repository")
	}

	settings := config.Load()
	if modelName != "" {
		settings.Model = modelName
	}

	client, err := ollama.NewClient(settings.Host, settings.Model)
	if err != nil {
		return err
	}

	ctx := context.Background()

	launcher := &ollama.Launcher{
		Client:   client,
		Interval: settings.PollInterval,
		Attempts: settings.StartupAttempts,
		Start:    startProcess,
	}
	if err := launcher.EnsureServer(ctx); err != nil {
		return err
	}
	if err := launcher.EnsureModel(ctx); err != nil {
		return err
	}

	if err := git.StageAll(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	diff, err := git.StagedDiff()
	if err != nil {
		return err
	}
	if diff == "" && debugMode {
		fmt.Println("Note: no staged changes detected")
	}

	sampler := history.NewSampler()
	examples := sampler.Recent(settings.RecentCount, settings.RecentLookback)
	examples = append(examples, sampler.Random(settings.RandomCount, settings.RandomPool, settings.RandomSkip)...)

	generator := &prompt.Generator{
		Completer: client,
		Timeout:   settings.GenerateTimeout,
		Debug:     debugMode,
	}
	body := generator.Generate(ctx, diff, examples)

	message := commit.Format(jiraTicket, body)
	if debugMode {
		fmt.Printf("\nSuggested commit message:\n\n%s\n", message)
	}

	gitDir, err := git.Dir()
	if err != nil {
		return err
	}

	msgFile, err := commit.Write(gitDir, message)
	if err != nil {
		return err
	}

	if err := git.CommitInteractive(msgFile); err != nil {
		return err
	}

	fmt.Println("\n✓ Done")
	return nil
}
