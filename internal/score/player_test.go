package score

import (
	"errors"
	"testing"
)

func TestTotalTracksLiveRuleValues(t *testing.T) {
	rules := DefaultRules()
	player := newPlayer("Ada", 0)
	player.Scores = []Entry{
		{Rule: RuleDrop},
		{Rule: RuleDrop},
		{Rule: RuleCustom, Value: intPtr(10)},
	}

	if got := player.Total(rules); got != 60 {
		t.Fatalf("expected total 60, got %d", got)
	}

	// Rule changes apply to rounds entered before the change.
	rules.Drop = 50
	if got := player.Total(rules); got != 110 {
		t.Fatalf("expected total 110 after rule change, got %d", got)
	}
}

func TestTotalToleratesNegativeValues(t *testing.T) {
	rules := &Rules{Drop: -5, MiddleDrop: 40, FullCount: 80}
	player := newPlayer("Ada", 0)
	player.Scores = []Entry{
		{Rule: RuleDrop},
		{Rule: RuleCustom, Value: intPtr(-20)},
	}
	if got := player.Total(rules); got != -25 {
		t.Fatalf("expected total -25, got %d", got)
	}
}

func TestSetScoreBounds(t *testing.T) {
	player := newPlayer("Ada", 2)

	if err := player.SetScore(1, Entry{Rule: RuleGame}); err != nil {
		t.Fatalf("set score: %v", err)
	}
	if player.Scores[1].Rule != RuleGame {
		t.Fatalf("expected game entry, got %#v", player.Scores[1])
	}

	if err := player.SetScore(2, Entry{Rule: RuleDrop}); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if err := player.SetScore(-1, Entry{Rule: RuleDrop}); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}
