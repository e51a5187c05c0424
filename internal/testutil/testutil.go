package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// TempGitRepo is a throwaway git repository for tests
type TempGitRepo struct {
	Path string
	T    *testing.T
}

// NewTempGitRepo creates an initialized git repository with one commit
func NewTempGitRepo(t *testing.T) *TempGitRepo {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "commait-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	repo := &TempGitRepo{Path: tmpDir, T: t}

	repo.git("init")
	repo.git("config", "user.name", "Test User")
	repo.git("config", "user.email", "test@example.com")
	repo.git("config", "commit.gpgsign", "false")

	repo.CreateFile("README.md", "# Test Repository\n")
	repo.git("add", ".")
	repo.git("commit", "-m", "Initial commit")

	return repo
}

// Cleanup removes the repository
func (r *TempGitRepo) Cleanup() {
	r.T.Helper()
	if err := os.RemoveAll(r.Path); err != nil {
		r.T.Errorf("failed to cleanup temp repo: %v", err)
	}
}

// Chdir makes the repository the working directory until the test ends
func (r *TempGitRepo) Chdir() {
	r.T.Helper()

	oldWd, err := os.Getwd()
	if err != nil {
		r.T.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(r.Path); err != nil {
		r.T.Fatalf("failed to chdir into repo: %v", err)
	}
	r.T.Cleanup(func() { os.Chdir(oldWd) })
}

// CreateFile creates a file in the repository
func (r *TempGitRepo) CreateFile(name, content string) {
	r.T.Helper()
	path := filepath.Join(r.Path, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		r.T.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		r.T.Fatalf("failed to create file: %v", err)
	}
}

// Commit stages everything and commits with the given message. Multi-line
// messages keep their body, so tests can exercise subject+body log records.
func (r *TempGitRepo) Commit(message string) {
	r.T.Helper()
	r.git("add", ".")
	r.git("commit", "-m", message)
}

// CommitEmpty records a commit without any changes, for building history fast
func (r *TempGitRepo) CommitEmpty(message string) {
	r.T.Helper()
	r.git("commit", "--allow-empty", "-m", message)
}

// StagedDiff returns the staged diff of the repository
func (r *TempGitRepo) StagedDiff() string {
	r.T.Helper()

	cmd := exec.Command("git", "diff", "--cached", "--no-color")
	cmd.Dir = r.Path
	output, err := cmd.Output()
	if err != nil {
		r.T.Fatalf("failed to get staged diff: %v", err)
	}
	return string(output)
}

func (r *TempGitRepo) git(args ...string) {
	r.T.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = r.Path
	if output, err := cmd.CombinedOutput(); err != nil {
		os.RemoveAll(r.Path)
		r.T.Fatalf("git %v failed: %v\n%s", args, err, output)
	}
}
