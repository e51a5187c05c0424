package git

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// logFormat emits subject and body per commit; records are separated by
// the blank line left between one commit's body and the next subject.
const logFormat = "%s%n%b"

// IsGitRepo checks if current directory is a git repository
func IsGitRepo() bool {
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	return cmd.Run() == nil
}

// Dir returns the repository's git directory (usually .git)
func Dir() (string, error) {
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to locate git directory: %w", err)
	}
	return filepath.Clean(strings.TrimSpace(string(output))), nil
}

// StageAll stages all tracked modifications, then any untracked files
func StageAll() error {
	for _, args := range [][]string{{"add", "-u"}, {"add", "."}} {
		cmd := exec.Command("git", args...)
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("failed to stage changes: %w", err)
		}
	}
	return nil
}

// StagedDiff returns the diff of staged changes
func StagedDiff() (string, error) {
	cmd := exec.Command("git", "diff", "--cached", "--no-color")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to get staged diff: %w", err)
	}
	return string(output), nil
}

// RecentLog returns subject and body of the n most recent commits
func RecentLog(n int) (string, error) {
	cmd := exec.Command("git", "log", "-n", strconv.Itoa(n), "--pretty=format:"+logFormat)
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to read git log: %w", err)
	}
	return string(output), nil
}

// SkipLog returns subject and body of n commits, skipping the most recent skip
func SkipLog(skip, n int) (string, error) {
	cmd := exec.Command("git", "log", "--skip="+strconv.Itoa(skip), "-n", strconv.Itoa(n), "--pretty=format:"+logFormat)
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to read git log: %w", err)
	}
	return string(output), nil
}

// CommitInteractive opens an interactive commit pre-filled from msgFile
func CommitInteractive(msgFile string) error {
	cmd := exec.Command("git", "commit", "--edit", "-F", msgFile)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
