// Package workflow implements the refinement session lifecycle: refine a
// section, review the result, then accept it, discard it, or save it as a
// new resume.
package workflow

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/resume-refiner/internal/refine"
	"github.com/jonathan/resume-refiner/internal/resume"
)

// State identifies where a session is in the refinement lifecycle.
type State string

const (
	// StateIdle means no refinement is pending.
	StateIdle State = "idle"
	// StateRefining means a model call is in flight.
	StateRefining State = "refining"
	// StateRefined means a result is awaiting accept, discard, or save-as-new.
	StateRefined State = "refined"
)

// Store persists resume documents. Implementations are keyed by opaque
// string identifiers.
type Store interface {
	Load(ctx context.Context, id string) (string, error)
	Save(ctx context.Context, id, content string) error
	Create(ctx context.Context, name, content string) (string, error)
}

// Refiner produces a rewritten section for a job description.
type Refiner interface {
	Refine(ctx context.Context, resumeText, jobDescription string, section resume.SectionKind, generateIntro bool) (*refine.RefinedResult, error)
}

// StateError reports an operation attempted in the wrong session state.
type StateError struct {
	Operation string
	State     State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s in state %q", e.Operation, e.State)
}

// MissingNameError reports a save-as-new without a name for the copy.
type MissingNameError struct{}

func (e *MissingNameError) Error() string {
	return "a name is required to save the refined resume as a new document"
}

// Session drives one resume through refinement rounds. It is not safe for
// concurrent use.
type Session struct {
	store   Store
	refiner Refiner
	id      string

	state State

	// snapshot is the resume text the pending refinement was computed
	// against. Save-as-new reconstructs on this snapshot so the copy
	// reflects what the user reviewed.
	snapshot string
	section  resume.SectionKind
	pending  *refine.RefinedResult
}

// NewSession starts an idle session for the resume with the given id.
func NewSession(store Store, refiner Refiner, id string) *Session {
	return &Session{
		store:   store,
		refiner: refiner,
		id:      id,
		state:   StateIdle,
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Pending returns the refinement result awaiting a decision, or nil.
func (s *Session) Pending() *refine.RefinedResult {
	return s.pending
}

// Refine loads the latest persisted text and asks the refiner to rewrite
// the chosen section. On success the session holds the result until the
// user accepts, discards, or saves it as a new resume.
func (s *Session) Refine(ctx context.Context, jobDescription string, section resume.SectionKind, generateIntro bool) (*refine.RefinedResult, error) {
	if s.state != StateIdle {
		return nil, &StateError{Operation: "refine", State: s.state}
	}

	text, err := s.store.Load(ctx, s.id)
	if err != nil {
		return nil, fmt.Errorf("failed to load resume %s: %w", s.id, err)
	}

	s.state = StateRefining
	result, err := s.refiner.Refine(ctx, text, jobDescription, section, generateIntro)
	if err != nil {
		s.state = StateIdle
		return nil, err
	}

	s.snapshot = text
	s.section = section
	s.pending = result
	s.state = StateRefined
	log.Printf("workflow: resume %s section %s refined, awaiting decision", s.id, section)
	return result, nil
}

// Accept merges the pending refinement into the latest persisted text and
// saves it in place. The merge rebases on whatever is stored now, so edits
// to other sections made since Refine are preserved.
func (s *Session) Accept(ctx context.Context) (string, error) {
	if s.state != StateRefined {
		return "", &StateError{Operation: "accept", State: s.state}
	}

	latest, err := s.store.Load(ctx, s.id)
	if err != nil {
		return "", fmt.Errorf("failed to load resume %s: %w", s.id, err)
	}

	merged, err := AcceptContent(latest, s.section, s.pending.RefinedMarkdown)
	if err != nil {
		return "", err
	}

	if err := s.store.Save(ctx, s.id, merged); err != nil {
		return "", fmt.Errorf("failed to save resume %s: %w", s.id, err)
	}

	s.reset()
	return merged, nil
}

// Discard drops the pending refinement without persisting anything.
func (s *Session) Discard() error {
	if s.state != StateRefined {
		return &StateError{Operation: "discard", State: s.state}
	}
	s.reset()
	return nil
}

// SaveAsNew stores the refined document as a new resume under the given
// name and leaves the original untouched. The new document is built from
// the snapshot taken at refinement time.
func (s *Session) SaveAsNew(ctx context.Context, name string) (string, error) {
	if s.state != StateRefined {
		return "", &StateError{Operation: "save as new", State: s.state}
	}
	if strings.TrimSpace(name) == "" {
		return "", &MissingNameError{}
	}

	merged, err := SaveAsNewContent(s.snapshot, s.section, s.pending.RefinedMarkdown)
	if err != nil {
		return "", err
	}

	newID, err := s.store.Create(ctx, name, merged)
	if err != nil {
		return "", fmt.Errorf("failed to create resume %q: %w", name, err)
	}

	s.reset()
	return newID, nil
}

func (s *Session) reset() {
	s.state = StateIdle
	s.snapshot = ""
	s.section = ""
	s.pending = nil
}

// AcceptContent merges a refined section into baseText and returns the
// full document. Exposed for callers that manage persistence themselves.
func AcceptContent(baseText string, section resume.SectionKind, refinedMarkdown string) (string, error) {
	return resume.Reconstruct(baseText, section, refinedMarkdown)
}

// SaveAsNewContent builds the document a save-as-new would persist.
func SaveAsNewContent(snapshotText string, section resume.SectionKind, refinedMarkdown string) (string, error) {
	return resume.Reconstruct(snapshotText, section, refinedMarkdown)
}
