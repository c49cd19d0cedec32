package score

import (
	"errors"
	"strings"
)

var (
	ErrOutOfRange    = errors.New("index out of range")
	ErrNotInProgress = errors.New("no game in progress")
	ErrEmptyName     = errors.New("player name is empty")
)

// Game is the live score table: players in seating order, the number of
// rounds dealt so far, and whether a game is running. Every player holds
// exactly Rounds entries at all times; AddPlayer and AddRound keep the
// table rectangular.
type Game struct {
	Players    []Player `json:"players"`
	Rounds     int      `json:"rounds"`
	InProgress bool     `json:"in_progress"`
}

func NewGame() *Game {
	return &Game{}
}

// Start begins a fresh game, discarding any previous table. Rule values are
// not touched.
func (g *Game) Start() {
	g.Players = nil
	g.Rounds = 0
	g.InProgress = true
}

// AddPlayer seats a new player, padded with one zero entry per round
// already dealt.
func (g *Game) AddPlayer(name string) (*Player, error) {
	if !g.InProgress {
		return nil, ErrNotInProgress
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	g.Players = append(g.Players, newPlayer(name, g.Rounds))
	return &g.Players[len(g.Players)-1], nil
}

// AddRound deals the next round: every seated player gets a zero entry to
// fill in.
func (g *Game) AddRound() error {
	if !g.InProgress {
		return ErrNotInProgress
	}
	for i := range g.Players {
		g.Players[i].Scores = append(g.Players[i].Scores, zeroEntry())
	}
	g.Rounds++
	return nil
}

// SetScore records an entry for one player in one round, both 0-based.
func (g *Game) SetScore(playerIndex, roundIndex int, entry Entry) error {
	if !g.InProgress {
		return ErrNotInProgress
	}
	if playerIndex < 0 || playerIndex >= len(g.Players) {
		return ErrOutOfRange
	}
	return g.Players[playerIndex].SetScore(roundIndex, entry)
}

// End closes the running game and clears the table. Rule values survive
// into the next game.
func (g *Game) End() error {
	if !g.InProgress {
		return ErrNotInProgress
	}
	g.Players = nil
	g.Rounds = 0
	g.InProgress = false
	return nil
}

// Totals returns every player's current total in seating order.
func (g *Game) Totals(rules *Rules) []int {
	totals := make([]int, len(g.Players))
	for i := range g.Players {
		totals[i] = g.Players[i].Total(rules)
	}
	return totals
}
