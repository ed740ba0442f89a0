package main

import (
	"bytes"
	"os"
	"testing"
)

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Drain concurrently so large outputs cannot fill the pipe and block fn.
	var buf bytes.Buffer
	done := make(chan error, 1)
	go func() {
		_, readErr := buf.ReadFrom(r)
		done <- readErr
	}()

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout

	if readErr := <-done; readErr != nil {
		t.Fatalf("failed to read output: %v", readErr)
	}

	return buf.String(), fnErr
}

// withGlobalFlags sets the persistent flags for the duration of a test.
func withGlobalFlags(t *testing.T, json, isQuiet bool) {
	t.Helper()
	prevJSON, prevQuiet := jsonOut, quiet
	jsonOut, quiet = json, isQuiet
	t.Cleanup(func() { jsonOut, quiet = prevJSON, prevQuiet })
}
