package commit

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// EditMsgFile is git's commit message file, pre-filled for --edit.
	EditMsgFile = "COMMIT_EDITMSG"
	// BotMsgFile keeps a copy of the generated message for reference.
	BotMsgFile = "COMMIT_EDITMSG_LLMBOT"
)

// Format prepends the ticket tag to the generated body. A supplied ticket
// marks the commit as a bugfix; otherwise it is tagged as dev work.
func Format(ticket, body string) string {
	if ticket != "" {
		return fmt.Sprintf("[BUGFIX %s] %s", ticket, body)
	}
	return fmt.Sprintf("[DEV] %s", body)
}

// Write overwrites both message files inside gitDir with the final message
// and a trailing newline, and returns the path git should edit.
func Write(gitDir, message string) (string, error) {
	content := []byte(message + "\n")

	for _, name := range []string{BotMsgFile, EditMsgFile} {
		path := filepath.Join(gitDir, name)
		if err := os.WriteFile(path, content, 0644); err != nil {
			return "", fmt.Errorf("failed to write %s: %w", name, err)
		}
	}

	return filepath.Join(gitDir, EditMsgFile), nil
}
