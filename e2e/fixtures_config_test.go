//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CreateTestWorkspace creates a temporary directory that serves as an
// isolated $HOME for the app under test
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// ConfigPath returns where the app under test reads and writes its
// config file, inside the isolated workspace
func (tf *TUITestFramework) ConfigPath() string {
	return filepath.Join(tf.workspace, ".config", "basket", "config.toml")
}

// WriteConfig writes raw config file contents into the workspace,
// before the app starts
func (tf *TUITestFramework) WriteConfig(toml string) error {
	if tf.workspace == "" {
		return fmt.Errorf("workspace not created")
	}
	path := tf.ConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(toml), 0644)
}

// ReadConfig returns the config file contents, for asserting on what
// the app saved at exit
func (tf *TUITestFramework) ReadConfig() (string, error) {
	data, err := os.ReadFile(tf.ConfigPath())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SeedItems writes a config whose seed_items show up in every window at
// startup
func (tf *TUITestFramework) SeedItems(items ...string) error {
	var b strings.Builder
	b.WriteString("version = 1\n")
	b.WriteString("seed_items = [")
	for i, item := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q", item)
	}
	b.WriteString("]\n")
	return tf.WriteConfig(b.String())
}
