package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maya/wellspring/internal/types"
)

func postJSON(t *testing.T, body any) *bytes.Reader {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return bytes.NewReader(raw)
}

func TestHandleQuestions(t *testing.T) {
	s := newTestServer()

	t.Run("known mood", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/questions?mood=anxious", nil)
		w := httptest.NewRecorder()

		s.handleQuestions(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Mood      string                     `json:"mood"`
			Questions []types.AssessmentQuestion `json:"questions"`
		}
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, "anxious", resp.Mood)
		assert.NotEmpty(t, resp.Questions)
	})

	t.Run("unknown mood falls back to generic set", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/questions?mood=bogus", nil)
		w := httptest.NewRecorder()

		s.handleQuestions(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Mood      string                     `json:"mood"`
			Questions []types.AssessmentQuestion `json:"questions"`
		}
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Questions)
	})
}

func TestHandleScoreAssessment(t *testing.T) {
	s := newTestServer()

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/assessments/score", strings.NewReader("{not json"))
		w := httptest.NewRecorder()

		s.handleScoreAssessment(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty answers score to zero profile", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/assessments/score", postJSON(t, ScoreRequest{Mood: "anxious"}))
		w := httptest.NewRecorder()

		s.handleScoreAssessment(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp ScoreResponse
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, "anxious", resp.Mood)
		assert.Zero(t, resp.Profile.Overall)
	})

	t.Run("answers produce bounded profile", func(t *testing.T) {
		body := ScoreRequest{
			Mood: "overwhelmed",
			Answers: []types.AssessmentAnswer{
				{QuestionID: "ov1", Score: 4},
				{QuestionID: "ov2", Score: 5},
			},
		}
		req := httptest.NewRequest(http.MethodPost, "/assessments/score", postJSON(t, body))
		w := httptest.NewRecorder()

		s.handleScoreAssessment(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp ScoreResponse
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, resp.Profile.Overall, 0.0)
		assert.LessOrEqual(t, resp.Profile.Overall, 5.0)
	})
}

func TestHandleRecommendations(t *testing.T) {
	s := newTestServer()

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/recommendations", strings.NewReader("nope"))
		w := httptest.NewRecorder()

		s.handleRecommendations(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("explicit profile", func(t *testing.T) {
		body := RecommendationsRequest{
			Mood:    "anxious",
			Profile: &types.StressProfile{Cognitive: 4, Stress: 4.5, Behavior: 3.5, Overall: 4},
		}
		req := httptest.NewRequest(http.MethodPost, "/recommendations", postJSON(t, body))
		w := httptest.NewRecorder()

		s.handleRecommendations(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var rec types.Recommendation
		err := json.Unmarshal(w.Body.Bytes(), &rec)
		require.NoError(t, err)
		assert.NotEmpty(t, rec.Books)
		assert.NotEmpty(t, rec.Music)
		assert.GreaterOrEqual(t, rec.ConfidenceScore, 0.0)
		assert.LessOrEqual(t, rec.ConfidenceScore, 100.0)
	})

	t.Run("explicit profile wins over answers", func(t *testing.T) {
		profile := types.StressProfile{Cognitive: 1, Stress: 1.5, Behavior: 1, Overall: 1.17}
		answers := []types.AssessmentAnswer{
			// High-scoring answers that would produce a very different
			// profile if the handler scored them anyway.
			{QuestionID: "ax1", Score: 5},
			{QuestionID: "ax2", Score: 5},
		}
		body := RecommendationsRequest{
			Mood:    "anxious",
			Answers: answers,
			Profile: &profile,
		}
		req := httptest.NewRequest(http.MethodPost, "/recommendations", postJSON(t, body))
		w := httptest.NewRecorder()

		s.handleRecommendations(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var rec types.Recommendation
		err := json.Unmarshal(w.Body.Bytes(), &rec)
		require.NoError(t, err)

		want := s.engine.Generate(answers, profile, types.ParseMood("anxious"))
		assert.Equal(t, want.Books, rec.Books)
		assert.Equal(t, want.Music, rec.Music)
		assert.InDelta(t, want.ConfidenceScore, rec.ConfidenceScore, 1e-9)
	})

	t.Run("profile computed from answers when absent", func(t *testing.T) {
		body := RecommendationsRequest{
			Mood: "exhausted",
			Answers: []types.AssessmentAnswer{
				{QuestionID: "ex1", Score: 3},
				{QuestionID: "ex2", Score: 4},
			},
		}
		req := httptest.NewRequest(http.MethodPost, "/recommendations", postJSON(t, body))
		w := httptest.NewRecorder()

		s.handleRecommendations(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var rec types.Recommendation
		err := json.Unmarshal(w.Body.Bytes(), &rec)
		require.NoError(t, err)
		assert.NotEmpty(t, rec.Books)
	})
}

func TestHandleInsights(t *testing.T) {
	s := newTestServer()

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/insights", strings.NewReader(""))
		w := httptest.NewRecorder()

		s.handleInsights(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("profile yields cards", func(t *testing.T) {
		body := InsightsRequest{
			Profile: types.StressProfile{Cognitive: 4.2, Stress: 4.5, Behavior: 3.8, Overall: 4.17},
		}
		req := httptest.NewRequest(http.MethodPost, "/insights", postJSON(t, body))
		w := httptest.NewRecorder()

		s.handleInsights(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Insights []types.InsightCard `json:"insights"`
		}
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Insights)
	})
}

func TestHandleResources(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/resources", nil)
	w := httptest.NewRecorder()

	s.handleResources(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Resources []map[string]any `json:"resources"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Resources)
}

func TestHandleChat(t *testing.T) {
	s := newTestServer()

	t.Run("empty message rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/chat", postJSON(t, ChatRequest{Message: "   "}))
		w := httptest.NewRecorder()

		s.handleChat(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp map[string]string
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.Equal(t, "Message is required", resp["error"])
	})

	t.Run("fallback answer when no provider configured", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/chat", postJSON(t, ChatRequest{Message: "I feel overwhelmed"}))
		w := httptest.NewRecorder()

		s.handleChat(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Answer     string `json:"answer"`
			Disclaimer string `json:"disclaimer"`
			Fallback   bool   `json:"fallback"`
		}
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		assert.True(t, resp.Fallback)
		assert.NotEmpty(t, resp.Answer)
		assert.NotEmpty(t, resp.Disclaimer)
	})
}
