// Package types provides API request and response definitions for the
// resume-refiner service.
package types

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CreateResumeRequest creates a new resume document.
type CreateResumeRequest struct {
	Name    string `json:"name" validate:"required,min=1"`
	Content string `json:"content" validate:"required"`
}

// UpdateResumeRequest replaces a resume's text.
type UpdateResumeRequest struct {
	Content string `json:"content" validate:"required"`
}

// RenameResumeRequest changes a resume's display name.
type RenameResumeRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

// RefineRequest asks for one section to be rewritten against a job
// description given inline or by URL.
type RefineRequest struct {
	JobDescription       string `json:"job_description,omitempty" validate:"required_without=JobURL"`
	JobURL               string `json:"job_url,omitempty" validate:"omitempty,url"`
	TargetSection        string `json:"target_section" validate:"required,oneof=personal education experience certifications full"`
	GenerateIntroduction bool   `json:"generate_introduction,omitempty"`
}

// AcceptRequest merges a reviewed refinement back into the stored resume.
type AcceptRequest struct {
	TargetSection  string `json:"target_section" validate:"required,oneof=personal education experience certifications full"`
	RefinedContent string `json:"refined_content" validate:"required"`
}

// SaveAsNewRequest stores a reviewed refinement as a new resume.
type SaveAsNewRequest struct {
	Name           string `json:"name" validate:"required,min=1"`
	TargetSection  string `json:"target_section" validate:"required,oneof=personal education experience certifications full"`
	RefinedContent string `json:"refined_content" validate:"required"`
}

// RefineResponse carries the rewritten section back to the caller.
type RefineResponse struct {
	RefinedContent string  `json:"refined_content"`
	Introduction   *string `json:"introduction,omitempty"`
}

// Validate validates the CreateResumeRequest using the validator.
func (r *CreateResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateResumeRequest using the validator.
func (r *UpdateResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RefineRequest using the validator.
func (r *RefineRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the AcceptRequest using the validator.
func (r *AcceptRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RenameResumeRequest using the validator.
func (r *RenameResumeRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name must not be blank")
	}
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SaveAsNewRequest using the validator.
func (r *SaveAsNewRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name must not be blank")
	}
	validate := validator.New()
	return validate.Struct(r)
}
