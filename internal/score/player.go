package score

import "github.com/google/uuid"

// Player is one column of the score table: a stable id assigned at the
// table, a display name, and one entry per elapsed round.
type Player struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Scores []Entry `json:"scores"`
}

// newPlayer seats a player with one zero entry per round already dealt so
// their score list lines up with everyone else's.
func newPlayer(name string, rounds int) Player {
	scores := make([]Entry, rounds)
	for i := range scores {
		scores[i] = zeroEntry()
	}
	return Player{
		ID:     uuid.NewString(),
		Name:   name,
		Scores: scores,
	}
}

// Total sums the player's entries against the live rule values. It is
// recomputed on every call, never cached, so rule changes apply to rounds
// entered before the change.
func (p *Player) Total(rules *Rules) int {
	total := 0
	for _, entry := range p.Scores {
		total += entry.Points(rules)
	}
	return total
}

// SetScore replaces the entry at a 0-based round index.
func (p *Player) SetScore(roundIndex int, entry Entry) error {
	if roundIndex < 0 || roundIndex >= len(p.Scores) {
		return ErrOutOfRange
	}
	p.Scores[roundIndex] = entry
	return nil
}
