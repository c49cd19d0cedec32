package server

import (
	"encoding/json"
	"log"
	"sync"

	"rummy-tally/internal/score"
)

// Session owns the one live score table and the one live set of rule
// values. All access goes through its mutex; after every successful
// mutation the state is committed to the store (best effort) and every
// observer is handed a fresh snapshot.
type Session struct {
	mu        sync.Mutex
	game      *score.Game
	rules     *score.Rules
	store     StateStore
	observers []func(map[string]any)
}

// NewSession builds a session around defaults. A nil store means the
// session runs in memory only.
func NewSession(store StateStore, rules score.Rules) *Session {
	live := rules
	return &Session{
		game:  score.NewGame(),
		rules: &live,
		store: store,
	}
}

// Restore replaces the live state with the persisted snapshot, if one
// exists. Called once at startup, before the server accepts requests. A
// failed load logs and starts fresh.
func (s *Session) Restore() {
	if s.store == nil {
		return
	}
	values, err := s.store.Load()
	if err != nil {
		log.Printf("state load failed, starting fresh error=%v", err)
		return
	}
	s.mu.Lock()
	game, rules := decodeState(values, *s.rules)
	s.game = game
	*s.rules = rules
	s.mu.Unlock()
	log.Printf("state restored players=%d rounds=%d in_progress=%t", len(game.Players), game.Rounds, game.InProgress)
}

// Observe registers fn to run with a fresh snapshot after every state
// change.
func (s *Session) Observe(fn func(map[string]any)) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

// mutate applies op under the lock, then commits and notifies. When op
// fails nothing is persisted or broadcast; the core operations leave state
// untouched on failure.
func (s *Session) mutate(op func(game *score.Game, rules *score.Rules) error) error {
	s.mu.Lock()
	if err := op(s.game, s.rules); err != nil {
		s.mu.Unlock()
		return err
	}
	values, encodeErr := encodeState(s.game, s.rules)
	snap := buildSnapshot(s.game, s.rules)
	observers := make([]func(map[string]any), len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	s.commit(values, encodeErr)
	for _, fn := range observers {
		fn(snap)
	}
	return nil
}

func (s *Session) commit(values map[string]json.RawMessage, encodeErr error) {
	if s.store == nil {
		return
	}
	if encodeErr != nil {
		log.Printf("state encode failed error=%v", encodeErr)
		return
	}
	if err := s.store.Save(values); err != nil {
		log.Printf("state save failed error=%v", err)
	}
}

func (s *Session) StartGame() error {
	return s.mutate(func(game *score.Game, _ *score.Rules) error {
		game.Start()
		return nil
	})
}

func (s *Session) EndGame() error {
	return s.mutate(func(game *score.Game, _ *score.Rules) error {
		return game.End()
	})
}

func (s *Session) AddPlayer(name string) error {
	return s.mutate(func(game *score.Game, _ *score.Rules) error {
		_, err := game.AddPlayer(name)
		return err
	})
}

func (s *Session) AddRound() error {
	return s.mutate(func(game *score.Game, _ *score.Rules) error {
		return game.AddRound()
	})
}

func (s *Session) SetScore(playerIndex, roundIndex int, entry score.Entry) error {
	return s.mutate(func(game *score.Game, _ *score.Rules) error {
		return game.SetScore(playerIndex, roundIndex, entry)
	})
}

// SetRules replaces the live rule values. The change is retroactive: every
// total read afterwards reflects the new values, for old rounds too.
func (s *Session) SetRules(rules score.Rules) error {
	return s.mutate(func(_ *score.Game, live *score.Rules) error {
		*live = rules
		return nil
	})
}

func (s *Session) Rules() score.Rules {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.rules
}

// Snapshot returns the current table as a wire-ready payload.
func (s *Session) Snapshot() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return buildSnapshot(s.game, s.rules)
}

// ExportCSV renders the current table as delimited text.
func (s *Session) ExportCSV() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return score.ExportCSV(s.game, s.rules)
}
