package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Load fetches resume text by its string ID, satisfying the workflow
// store contract.
func (db *DB) Load(ctx context.Context, id string) (string, error) {
	resumeID, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("invalid resume id %q: %w", id, err)
	}
	r, err := db.GetResume(ctx, resumeID)
	if err != nil {
		return "", err
	}
	if r == nil {
		return "", fmt.Errorf("resume %s not found", id)
	}
	return r.Content, nil
}

// Save replaces resume text by its string ID.
func (db *DB) Save(ctx context.Context, id, content string) error {
	resumeID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid resume id %q: %w", id, err)
	}
	updated, err := db.UpdateResumeContent(ctx, resumeID, content)
	if err != nil {
		return err
	}
	if !updated {
		return fmt.Errorf("resume %s not found", id)
	}
	return nil
}

// Create stores a new named resume and returns its string ID.
func (db *DB) Create(ctx context.Context, name, content string) (string, error) {
	id, err := db.CreateResume(ctx, name, content)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
