//go:build e2e && unix

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStartupShowsSeedItems(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	require.NoError(t, tf.SeedItems("milk", "eggs", "bread"), "Failed to write seed config")

	err = tf.StartApp()
	require.NoError(t, err, "Failed to start app")

	// Wait for TUI to initialize
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("basket"), "Should show basket title")

	// Seed items from the config render in the first window
	require.True(t, tf.SeePlain("milk"), "Should show first seed item")
	require.True(t, tf.SeePlain("eggs"), "Should show second seed item")
	require.True(t, tf.SeePlain("bread"), "Should show third seed item")
	require.True(t, tf.SeePlain("3 items"), "Title line should count the items")
}

func TestStartupWithEmptyList(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	// No config at all: defaults apply
	err = tf.StartApp()
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("basket"), "Should show basket title")
	require.True(t, tf.SeePlain("(no items)"), "Empty list should show a placeholder")
}

func TestStartupOpensConfiguredWindows(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	require.NoError(t, tf.WriteConfig("version = 1\nwindows = 2\n"), "Failed to write config")

	err = tf.StartApp()
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("window 1"), "Should render the first window")
	require.True(t, tf.SeePlain("window 2"), "Should render the second window")
}
