package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/maya/wellspring/internal/assessment"
	"github.com/maya/wellspring/internal/insights"
	"github.com/maya/wellspring/internal/types"
)

// ScoreRequest carries one completed assessment session.
type ScoreRequest struct {
	Mood    string                   `json:"mood"`
	Answers []types.AssessmentAnswer `json:"answers"`
}

// ScoreResponse returns the computed profile together with the normalized
// mood the server actually scored against.
type ScoreResponse struct {
	Mood    string              `json:"mood"`
	Profile types.StressProfile `json:"profile"`
}

// RecommendationsRequest asks for a recommendation bundle. Profile is
// optional; when absent it is computed from the answers.
type RecommendationsRequest struct {
	Mood    string                   `json:"mood"`
	Answers []types.AssessmentAnswer `json:"answers"`
	Profile *types.StressProfile     `json:"profile,omitempty"`
}

// InsightsRequest asks for insight cards for a profile.
type InsightsRequest struct {
	Profile types.StressProfile `json:"profile"`
}

// ChatRequest carries one chat message.
type ChatRequest struct {
	Message string `json:"message"`
}

// handleQuestions returns a drawn question session for the requested mood.
// An unrecognized or absent mood gets the generic fallback set.
func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	mood := types.ParseMood(r.URL.Query().Get("mood"))
	questions := assessment.Draw(mood)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"mood":      mood.String(),
		"questions": questions,
	})
}

// handleScoreAssessment scores a completed session against the mood's
// question bank.
func (s *Server) handleScoreAssessment(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	mood := types.ParseMood(req.Mood)
	profile := assessment.Score(req.Answers, assessment.Bank(mood))

	s.jsonResponse(w, http.StatusOK, ScoreResponse{
		Mood:    mood.String(),
		Profile: profile,
	})
}

// handleRecommendations produces the recommendation bundle for a profile.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var req RecommendationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	mood := types.ParseMood(req.Mood)

	var profile types.StressProfile
	if req.Profile != nil {
		profile = *req.Profile
	} else {
		profile = assessment.Score(req.Answers, assessment.Bank(mood))
	}

	rec := s.engine.Generate(req.Answers, profile, mood)
	s.jsonResponse(w, http.StatusOK, rec)
}

// handleInsights assembles insight cards for a profile.
func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	var req InsightsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cards := insights.Assemble(req.Profile)
	s.jsonResponse(w, http.StatusOK, map[string]any{"insights": cards})
}

// handleResources returns the static crisis resource list.
func (s *Server) handleResources(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"resources": insights.CrisisResources})
}

// handleChat answers one support-chat message.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		s.errorResponse(w, http.StatusBadRequest, "Message is required")
		return
	}

	resp := s.chatService.Ask(r.Context(), req.Message)
	s.jsonResponse(w, http.StatusOK, resp)
}
