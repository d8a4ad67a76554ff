package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/maya/wellspring/internal/db"
	"github.com/maya/wellspring/internal/insights"
	"github.com/maya/wellspring/internal/server/middleware"
	"github.com/maya/wellspring/internal/types"
)

// CreateCheckInRequest records one completed session for the user. Insights
// are assembled server-side from the profile.
type CreateCheckInRequest struct {
	Mood    string              `json:"mood"`
	Profile types.StressProfile `json:"profile"`
	Note    string              `json:"note,omitempty"`
}

// authorizedPathUser parses the {id} path segment and checks it against the
// authenticated user. Writes the error response itself when the check fails.
func (s *Server) authorizedPathUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	pathID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return uuid.Nil, false
	}

	authID, err := middleware.GetUserID(r)
	if err != nil || authID != pathID {
		s.errorResponse(w, http.StatusForbidden, "Forbidden")
		return uuid.Nil, false
	}

	return pathID, true
}

// handleCreateCheckIn stores a completed session for the authenticated user.
func (s *Server) handleCreateCheckIn(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authorizedPathUser(w, r)
	if !ok {
		return
	}

	var req CreateCheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	checkIn := &db.CheckIn{
		UserID:   userID,
		Mood:     types.ParseMood(req.Mood).String(),
		Profile:  req.Profile,
		Insights: insights.Assemble(req.Profile),
		Note:     req.Note,
	}

	id, err := s.checkIns.CreateCheckIn(r.Context(), checkIn)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create check-in")
		return
	}

	stored, err := s.checkIns.GetCheckIn(r.Context(), id)
	if err != nil || stored == nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load created check-in")
		return
	}

	s.jsonResponse(w, http.StatusCreated, stored)
}

// handleListCheckIns returns the authenticated user's check-ins, newest
// first. The optional limit query parameter caps the result.
func (s *Server) handleListCheckIns(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.authorizedPathUser(w, r)
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	checkIns, err := s.checkIns.ListCheckIns(r.Context(), userID, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list check-ins")
		return
	}
	if checkIns == nil {
		checkIns = []db.CheckIn{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"check_ins": checkIns})
}

// handleGetCheckIn returns one check-in owned by the authenticated user.
func (s *Server) handleGetCheckIn(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid check-in ID")
		return
	}

	checkIn, err := s.checkIns.GetCheckIn(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get check-in")
		return
	}
	if checkIn == nil {
		s.errorResponse(w, http.StatusNotFound, (&ErrCheckInNotFound{CheckInID: id}).Error())
		return
	}

	authID, err := middleware.GetUserID(r)
	if err != nil || authID != checkIn.UserID {
		s.errorResponse(w, http.StatusForbidden, "Forbidden")
		return
	}

	s.jsonResponse(w, http.StatusOK, checkIn)
}

// handleDeleteCheckIn deletes one check-in owned by the authenticated user.
func (s *Server) handleDeleteCheckIn(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid check-in ID")
		return
	}

	checkIn, err := s.checkIns.GetCheckIn(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get check-in")
		return
	}
	if checkIn == nil {
		s.errorResponse(w, http.StatusNotFound, (&ErrCheckInNotFound{CheckInID: id}).Error())
		return
	}

	authID, err := middleware.GetUserID(r)
	if err != nil || authID != checkIn.UserID {
		s.errorResponse(w, http.StatusForbidden, "Forbidden")
		return
	}

	if err := s.checkIns.DeleteCheckIn(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete check-in")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
