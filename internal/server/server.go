package server

import (
	"net/http"

	"rummy-tally/internal/config"
	"rummy-tally/internal/score"

	"gorm.io/gorm"
)

type Server struct {
	session *Session
	ws      *wsHub
	cfg     config.Config
}

// New builds the server around a single restored session. conn may be nil;
// the scorekeeper then runs in memory only.
func New(conn *gorm.DB, cfg config.Config) *Server {
	seed := score.Rules{
		Drop:       cfg.DropValue,
		MiddleDrop: cfg.MiddleDropValue,
		FullCount:  cfg.FullCountValue,
	}
	s := &Server{
		session: NewSession(NewStateStore(conn), seed),
		ws:      newWSHub(),
		cfg:     cfg,
	}
	s.session.Restore()
	s.session.Observe(s.ws.Broadcast)
	return s
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleHome)
	mux.HandleFunc("GET /api/game", s.handleGameState)
	mux.HandleFunc("POST /api/game/start", s.handleStartGame)
	mux.HandleFunc("POST /api/game/end", s.handleEndGame)
	mux.HandleFunc("POST /api/game/players", s.handleAddPlayer)
	mux.HandleFunc("POST /api/game/rounds", s.handleAddRound)
	mux.HandleFunc("PUT /api/game/players/", s.handleSetScore)
	mux.HandleFunc("GET /api/rules", s.handleGetRules)
	mux.HandleFunc("PUT /api/rules", s.handleUpdateRules)
	mux.HandleFunc("GET /api/export", s.handleExport)
	mux.HandleFunc("GET /ws", s.handleWebsocket)
	return mux
}
