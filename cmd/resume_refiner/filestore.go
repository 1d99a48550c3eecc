package main

import (
	"context"
	"fmt"
	"os"
)

// fileStore adapts local files to the refinement session's store. Resume
// ids and new-resume names are file paths. When outPath is empty an
// accepted document is held in merged for the caller to print instead of
// being written back over the input file.
type fileStore struct {
	outPath string
	merged  string
}

func (f *fileStore) Load(_ context.Context, id string) (string, error) {
	data, err := os.ReadFile(id)
	if err != nil {
		return "", fmt.Errorf("failed to read resume file: %w", err)
	}
	return string(data), nil
}

func (f *fileStore) Save(_ context.Context, _ string, content string) error {
	if f.outPath == "" {
		f.merged = content
		return nil
	}
	if err := os.WriteFile(f.outPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func (f *fileStore) Create(_ context.Context, name, content string) (string, error) {
	if err := os.WriteFile(name, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write output file: %w", err)
	}
	return name, nil
}
