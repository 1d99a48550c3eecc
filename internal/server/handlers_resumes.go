package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-refiner/internal/resume"
	"github.com/jonathan/resume-refiner/internal/types"
	"github.com/jonathan/resume-refiner/internal/workflow"
)

// handleCreateResume stores a new resume document. The content must parse
// in the Markdown dialect.
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	var req types.CreateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := resume.Parse(req.Content); err != nil {
		s.domainErrorResponse(w, err)
		return
	}

	id, err := s.store.CreateResume(r.Context(), req.Name, req.Content)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create resume: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
}

// handleListResumes returns summaries of all stored resumes
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.store.ListResumes(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list resumes: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"resumes": summaries})
}

// handleGetResume returns one resume with its full text
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	id, ok := s.resumeID(w, r)
	if !ok {
		return
	}

	res, err := s.store.GetResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get resume: "+err.Error())
		return
	}
	if res == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, res)
}

// handleUpdateResume replaces a resume's text. The new content must parse.
func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	id, ok := s.resumeID(w, r)
	if !ok {
		return
	}

	var req types.UpdateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := resume.Parse(req.Content); err != nil {
		s.domainErrorResponse(w, err)
		return
	}

	updated, err := s.store.UpdateResumeContent(r.Context(), id, req.Content)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update resume: "+err.Error())
		return
	}
	if !updated {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

// handleRenameResume changes a resume's display name without touching its
// content.
func (s *Server) handleRenameResume(w http.ResponseWriter, r *http.Request) {
	id, ok := s.resumeID(w, r)
	if !ok {
		return
	}

	var req types.RenameResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	renamed, err := s.store.RenameResume(r.Context(), id, req.Name)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to rename resume: "+err.Error())
		return
	}
	if !renamed {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "renamed"})
}

// handleDeleteResume removes a resume
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	id, ok := s.resumeID(w, r)
	if !ok {
		return
	}

	deleted, err := s.store.DeleteResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete resume: "+err.Error())
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleGetSection returns one section of a resume in canonical form
func (s *Server) handleGetSection(w http.ResponseWriter, r *http.Request) {
	id, ok := s.resumeID(w, r)
	if !ok {
		return
	}

	kind, err := resume.ParseSectionKind(r.PathValue("section"))
	if err != nil {
		s.domainErrorResponse(w, err)
		return
	}

	res, err := s.store.GetResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get resume: "+err.Error())
		return
	}
	if res == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	content, err := resume.Select(res.Content, kind)
	if err != nil {
		s.domainErrorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{
		"section": string(kind),
		"content": content,
	})
}

// handleRefine rewrites one section of a resume against a job description.
// The result is returned to the caller for review; nothing is persisted.
func (s *Server) handleRefine(w http.ResponseWriter, r *http.Request) {
	id, ok := s.resumeID(w, r)
	if !ok {
		return
	}

	var req types.RefineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	kind, err := resume.ParseSectionKind(req.TargetSection)
	if err != nil {
		s.domainErrorResponse(w, err)
		return
	}

	res, err := s.store.GetResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get resume: "+err.Error())
		return
	}
	if res == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	jobDescription := req.JobDescription
	if jobDescription == "" {
		jobDescription, err = s.fetchJob(r.Context(), req.JobURL)
		if err != nil {
			log.Printf("Failed to fetch job posting from %s: %v", req.JobURL, err)
			s.errorResponse(w, http.StatusBadGateway, "Failed to fetch job posting: "+err.Error())
			return
		}
	}

	result, err := s.refiner.Refine(r.Context(), res.Content, jobDescription, kind, req.GenerateIntroduction)
	if err != nil {
		s.domainErrorResponse(w, err)
		return
	}

	resp := types.RefineResponse{RefinedContent: result.RefinedMarkdown}
	if req.GenerateIntroduction && result.Introduction != "" {
		resp.Introduction = &result.Introduction
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleAccept merges a reviewed refinement into the stored resume
func (s *Server) handleAccept(w http.ResponseWriter, r *http.Request) {
	id, ok := s.resumeID(w, r)
	if !ok {
		return
	}

	var req types.AcceptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	kind, err := resume.ParseSectionKind(req.TargetSection)
	if err != nil {
		s.domainErrorResponse(w, err)
		return
	}

	res, err := s.store.GetResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get resume: "+err.Error())
		return
	}
	if res == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	merged, err := workflow.AcceptContent(res.Content, kind, req.RefinedContent)
	if err != nil {
		s.domainErrorResponse(w, err)
		return
	}

	updated, err := s.store.UpdateResumeContent(r.Context(), id, merged)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save resume: "+err.Error())
		return
	}
	if !updated {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":  "accepted",
		"content": merged,
	})
}

// handleSaveAsNew stores a reviewed refinement as a new resume, leaving
// the original untouched
func (s *Server) handleSaveAsNew(w http.ResponseWriter, r *http.Request) {
	id, ok := s.resumeID(w, r)
	if !ok {
		return
	}

	var req types.SaveAsNewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	kind, err := resume.ParseSectionKind(req.TargetSection)
	if err != nil {
		s.domainErrorResponse(w, err)
		return
	}

	res, err := s.store.GetResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get resume: "+err.Error())
		return
	}
	if res == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	merged, err := workflow.SaveAsNewContent(res.Content, kind, req.RefinedContent)
	if err != nil {
		s.domainErrorResponse(w, err)
		return
	}

	newID, err := s.store.CreateResume(r.Context(), req.Name, merged)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create resume: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{
		"id":      newID.String(),
		"content": merged,
	})
}

// resumeID parses the {id} path segment, writing an error response when it
// is not a UUID.
func (s *Server) resumeID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume id")
		return uuid.Nil, false
	}
	return id, true
}
