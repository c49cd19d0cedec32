package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"rummy-tally/internal/score"
)

type addPlayerRequest struct {
	Name string `json:"name"`
}

type setScoreRequest struct {
	Rule  string `json:"rule"`
	Value *int   `json:"value"`
}

type rulesRequest struct {
	Drop       int `json:"drop"`
	MiddleDrop int `json:"middle_drop"`
	FullCount  int `json:"full_count"`
}

func (s *Server) handleGameState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.session.Snapshot())
}

func (s *Server) handleStartGame(w http.ResponseWriter, r *http.Request) {
	if err := s.session.StartGame(); err != nil {
		writeCoreError(w, err)
		return
	}
	log.Printf("game started")
	writeJSON(w, http.StatusOK, s.session.Snapshot())
}

func (s *Server) handleEndGame(w http.ResponseWriter, r *http.Request) {
	if err := s.session.EndGame(); err != nil {
		writeCoreError(w, err)
		return
	}
	log.Printf("game ended")
	writeJSON(w, http.StatusOK, s.session.Snapshot())
}

func (s *Server) handleAddPlayer(w http.ResponseWriter, r *http.Request) {
	var req addPlayerRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.session.AddPlayer(req.Name); err != nil {
		writeCoreError(w, err)
		return
	}
	log.Printf("player added name=%s", req.Name)
	writeJSON(w, http.StatusCreated, s.session.Snapshot())
}

func (s *Server) handleAddRound(w http.ResponseWriter, r *http.Request) {
	if err := s.session.AddRound(); err != nil {
		writeCoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, s.session.Snapshot())
}

func (s *Server) handleSetScore(w http.ResponseWriter, r *http.Request) {
	playerIndex, roundIndex, ok := parseScorePath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}
	var req setScoreRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	rule := score.Rule(req.Rule)
	if !rule.Valid() {
		writeError(w, http.StatusBadRequest, "unknown rule")
		return
	}
	entry := score.Entry{Rule: rule}
	if rule == score.RuleCustom {
		// A missing value is tolerated and counts as 0.
		entry.Value = req.Value
	}
	if err := s.session.SetScore(playerIndex, roundIndex, entry); err != nil {
		writeCoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.session.Snapshot())
}

func (s *Server) handleGetRules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rulesPayload(s.session.Rules()))
}

func (s *Server) handleUpdateRules(w http.ResponseWriter, r *http.Request) {
	var req rulesRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	rules := score.Rules{
		Drop:       req.Drop,
		MiddleDrop: req.MiddleDrop,
		FullCount:  req.FullCount,
	}
	if err := s.session.SetRules(rules); err != nil {
		writeCoreError(w, err)
		return
	}
	log.Printf("rules updated drop=%d middle_drop=%d full_count=%d", rules.Drop, rules.MiddleDrop, rules.FullCount)
	writeJSON(w, http.StatusOK, rulesPayload(rules))
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	data, err := s.session.ExportCSV()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to export scores")
		return
	}
	filename := fmt.Sprintf("rummy-scores-%s.csv", time.Now().UTC().Format("20060102-150405"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func writeCoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, score.ErrEmptyName):
		writeError(w, http.StatusBadRequest, "player name is required")
	case errors.Is(err, score.ErrNotInProgress):
		writeError(w, http.StatusConflict, "no game in progress")
	case errors.Is(err, score.ErrOutOfRange):
		writeError(w, http.StatusConflict, "index out of range")
	default:
		writeError(w, http.StatusInternalServerError, "operation failed")
	}
}
