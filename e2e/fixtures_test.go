//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CreateTestWorkspace creates a temporary directory that doubles as $HOME
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// CreateDeck writes a deck file with one story per title into the workspace
func (tf *TUITestFramework) CreateDeck(name, title string, stories ...string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "title = %q\n", title)
	for _, s := range stories {
		fmt.Fprintf(&b, "\n[[story]]\ntitle = %q\nbody = %q\n", s, "Body of "+s)
	}

	path := filepath.Join(tf.workspace, name)
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write deck: %w", err)
	}
	return path, nil
}
