package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/job-analyzer/internal/analyze"
	"github.com/jonathan/job-analyzer/internal/ingestion"
	"github.com/jonathan/job-analyzer/internal/profiles"
	"github.com/jonathan/job-analyzer/internal/ranking"
	"github.com/jonathan/job-analyzer/internal/types"
)

// ScrapeResponse represents the response for /scrape
type ScrapeResponse struct {
	AnalysisID string                  `json:"analysis_id"`
	Result     *types.JobPostingResult `json:"result"`
	Metadata   *ingestion.Metadata     `json:"metadata"`
}

// RankResponse represents the response for /github/rank
type RankResponse struct {
	RequestID string                 `json:"request_id"`
	Results   []types.RelevanceScore `json:"results"`
}

// MatchResponse represents the response for /skills/match
type MatchResponse struct {
	RequestID string               `json:"request_id"`
	Result    types.RelevanceScore `json:"result"`
}

// AnalyzeURLResponse represents the response for /analyze-url
type AnalyzeURLResponse struct {
	URL       string `json:"url"`
	Site      string `json:"site"`
	Supported bool   `json:"supported"`
}

// handleScrape analyzes a job posting from a URL or raw description
func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	var input types.JobPostingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := analyze.Run(r.Context(), analyze.Options{
		Input:      input,
		APIKey:     s.apiKey,
		UseBrowser: s.useBrowser,
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	meta := ingestion.NewMetadata(result.Description, input.URL)
	meta.Site = result.Site

	s.jsonResponse(w, http.StatusOK, ScrapeResponse{
		AnalysisID: uuid.New().String(),
		Result:     result,
		Metadata:   meta,
	})
}

// handleRankRepositories ranks repositories against job requirements
func (s *Server) handleRankRepositories(w http.ResponseWriter, r *http.Request) {
	var req types.RankRepositoriesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	scores := ranking.RankRepositories(r.Context(), req.Repositories, req.Requirements)

	s.jsonResponse(w, http.StatusOK, RankResponse{
		RequestID: uuid.New().String(),
		Results:   scores,
	})
}

// handleMatchSkills matches resume skills against required skills
func (s *Server) handleMatchSkills(w http.ResponseWriter, r *http.Request) {
	var req types.MatchSkillsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	score := ranking.MatchResumeSkills(req.ResumeSkills, req.RequiredSkills)

	s.jsonResponse(w, http.StatusOK, MatchResponse{
		RequestID: uuid.New().String(),
		Result:    score,
	})
}

// handleAnalyzeURL reports which site profile a URL resolves to
func (s *Server) handleAnalyzeURL(w http.ResponseWriter, r *http.Request) {
	urlStr := r.URL.Query().Get("url")
	if urlStr == "" {
		s.errorResponse(w, http.StatusBadRequest, "url query parameter is required")
		return
	}

	profile := profiles.Detect(urlStr)

	s.jsonResponse(w, http.StatusOK, AnalyzeURLResponse{
		URL:       urlStr,
		Site:      string(profile),
		Supported: profiles.Supported(profile),
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
