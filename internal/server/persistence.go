package server

import (
	"encoding/json"

	"rummy-tally/internal/db"
	"rummy-tally/internal/score"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Persisted state keys. Loading tolerates any of them being absent or
// malformed; the field falls back to its default instead.
const (
	keyPlayers        = "players"
	keyRoundCount     = "roundCount"
	keyGameInProgress = "gameInProgress"
	keyRuleDrop       = "ruleDrop"
	keyRuleMiddleDrop = "ruleMiddleDrop"
	keyRuleFullCount  = "ruleFullCount"
)

// StateStore is the durable side of the scorekeeper. A failed Save is
// reported and swallowed; the in-memory table stays the source of truth
// until the next successful one.
type StateStore interface {
	Save(values map[string]json.RawMessage) error
	Load() (map[string]json.RawMessage, error)
}

type gormStateStore struct {
	conn *gorm.DB
}

// NewStateStore wraps a gorm connection as a StateStore. A nil connection
// yields a nil store, which the session treats as "run without persistence".
func NewStateStore(conn *gorm.DB) StateStore {
	if conn == nil {
		return nil
	}
	return &gormStateStore{conn: conn}
}

func (s *gormStateStore) Save(values map[string]json.RawMessage) error {
	records := make([]db.StateEntry, 0, len(values))
	for key, value := range values {
		records = append(records, db.StateEntry{
			Key:   key,
			Value: datatypes.JSON(value),
		})
	}
	return s.conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&records).Error
}

func (s *gormStateStore) Load() (map[string]json.RawMessage, error) {
	var records []db.StateEntry
	if err := s.conn.Find(&records).Error; err != nil {
		return nil, err
	}
	values := make(map[string]json.RawMessage, len(records))
	for _, record := range records {
		values[record.Key] = json.RawMessage(record.Value)
	}
	return values, nil
}

// encodeState flattens the live game and rule values into the persisted
// key-value layout.
func encodeState(game *score.Game, rules *score.Rules) (map[string]json.RawMessage, error) {
	values := make(map[string]json.RawMessage, 6)
	put := func(key string, v any) error {
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		values[key] = data
		return nil
	}
	players := game.Players
	if players == nil {
		players = []score.Player{}
	}
	if err := put(keyPlayers, players); err != nil {
		return nil, err
	}
	if err := put(keyRoundCount, game.Rounds); err != nil {
		return nil, err
	}
	if err := put(keyGameInProgress, game.InProgress); err != nil {
		return nil, err
	}
	if err := put(keyRuleDrop, rules.Drop); err != nil {
		return nil, err
	}
	if err := put(keyRuleMiddleDrop, rules.MiddleDrop); err != nil {
		return nil, err
	}
	if err := put(keyRuleFullCount, rules.FullCount); err != nil {
		return nil, err
	}
	return values, nil
}

// decodeState rebuilds the game and rule values from a persisted snapshot.
// defaults supplies the rule values used when a rule key is missing or
// malformed.
func decodeState(values map[string]json.RawMessage, defaults score.Rules) (*score.Game, score.Rules) {
	game := score.NewGame()
	rules := defaults

	if raw, ok := values[keyPlayers]; ok {
		var players []score.Player
		if err := json.Unmarshal(raw, &players); err == nil {
			game.Players = players
		}
	}
	if rounds, ok := decodeInt(values[keyRoundCount]); ok && rounds >= 0 {
		game.Rounds = rounds
	}
	if raw, ok := values[keyGameInProgress]; ok {
		var inProgress bool
		if err := json.Unmarshal(raw, &inProgress); err == nil {
			game.InProgress = inProgress
		}
	}
	if v, ok := decodeInt(values[keyRuleDrop]); ok {
		rules.Drop = v
	}
	if v, ok := decodeInt(values[keyRuleMiddleDrop]); ok {
		rules.MiddleDrop = v
	}
	if v, ok := decodeInt(values[keyRuleFullCount]); ok {
		rules.FullCount = v
	}

	normalizeScores(game)
	return game, rules
}

func decodeInt(raw json.RawMessage) (int, bool) {
	if raw == nil {
		return 0, false
	}
	var value int
	if err := json.Unmarshal(raw, &value); err != nil {
		return 0, false
	}
	return value, true
}

// normalizeScores pads or truncates every player's score list to the round
// count so the table stays rectangular even against a stale snapshot.
func normalizeScores(game *score.Game) {
	for i := range game.Players {
		player := &game.Players[i]
		for len(player.Scores) < game.Rounds {
			player.Scores = append(player.Scores, score.Entry{Rule: score.RuleZero})
		}
		if len(player.Scores) > game.Rounds {
			player.Scores = player.Scores[:game.Rounds]
		}
	}
}
