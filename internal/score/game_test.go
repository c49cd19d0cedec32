package score

import (
	"errors"
	"testing"
)

func TestMutationsRequireRunningGame(t *testing.T) {
	game := NewGame()

	if _, err := game.AddPlayer("Ada"); !errors.Is(err, ErrNotInProgress) {
		t.Fatalf("expected ErrNotInProgress, got %v", err)
	}
	if err := game.AddRound(); !errors.Is(err, ErrNotInProgress) {
		t.Fatalf("expected ErrNotInProgress, got %v", err)
	}
	if err := game.SetScore(0, 0, Entry{Rule: RuleDrop}); !errors.Is(err, ErrNotInProgress) {
		t.Fatalf("expected ErrNotInProgress, got %v", err)
	}
	if err := game.End(); !errors.Is(err, ErrNotInProgress) {
		t.Fatalf("expected ErrNotInProgress, got %v", err)
	}
}

func TestAddPlayerRejectsEmptyName(t *testing.T) {
	game := NewGame()
	game.Start()

	for _, name := range []string{"", "   ", "\t"} {
		if _, err := game.AddPlayer(name); !errors.Is(err, ErrEmptyName) {
			t.Fatalf("name %q: expected ErrEmptyName, got %v", name, err)
		}
	}
	if len(game.Players) != 0 {
		t.Fatalf("expected no players, got %d", len(game.Players))
	}
}

func TestScoreCountsTrackRoundCount(t *testing.T) {
	game := NewGame()
	game.Start()

	assertRectangular := func() {
		t.Helper()
		for i := range game.Players {
			if got := len(game.Players[i].Scores); got != game.Rounds {
				t.Fatalf("player %d has %d scores, round count is %d", i, got, game.Rounds)
			}
		}
	}

	if _, err := game.AddPlayer("Ada"); err != nil {
		t.Fatalf("add player: %v", err)
	}
	assertRectangular()
	if err := game.AddRound(); err != nil {
		t.Fatalf("add round: %v", err)
	}
	assertRectangular()
	if _, err := game.AddPlayer("Bob"); err != nil {
		t.Fatalf("add player: %v", err)
	}
	assertRectangular()
	if err := game.AddRound(); err != nil {
		t.Fatalf("add round: %v", err)
	}
	if err := game.AddRound(); err != nil {
		t.Fatalf("add round: %v", err)
	}
	assertRectangular()
	if game.Rounds != 3 {
		t.Fatalf("expected 3 rounds, got %d", game.Rounds)
	}
}

func TestLatePlayerGetsZeroBackfill(t *testing.T) {
	game := NewGame()
	game.Start()
	if _, err := game.AddPlayer("Ada"); err != nil {
		t.Fatalf("add player: %v", err)
	}
	for i := 0; i < 4; i++ {
		if err := game.AddRound(); err != nil {
			t.Fatalf("add round: %v", err)
		}
	}

	player, err := game.AddPlayer("Bob")
	if err != nil {
		t.Fatalf("add player: %v", err)
	}
	if len(player.Scores) != 4 {
		t.Fatalf("expected 4 backfilled scores, got %d", len(player.Scores))
	}
	for i, entry := range player.Scores {
		if entry.Rule != RuleZero || entry.Value != nil {
			t.Fatalf("score %d: expected zero entry, got %#v", i, entry)
		}
	}
	if got := player.Total(DefaultRules()); got != 0 {
		t.Fatalf("expected total 0, got %d", got)
	}
}

func TestSetScoreOutOfRangeLeavesStateAlone(t *testing.T) {
	game := NewGame()
	game.Start()
	if _, err := game.AddPlayer("Ada"); err != nil {
		t.Fatalf("add player: %v", err)
	}
	if err := game.AddRound(); err != nil {
		t.Fatalf("add round: %v", err)
	}

	if err := game.SetScore(0, 1, Entry{Rule: RuleDrop}); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange for round index, got %v", err)
	}
	if err := game.SetScore(1, 0, Entry{Rule: RuleDrop}); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange for player index, got %v", err)
	}
	if err := game.SetScore(-1, 0, Entry{Rule: RuleDrop}); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange for negative index, got %v", err)
	}

	if entry := game.Players[0].Scores[0]; entry.Rule != RuleZero {
		t.Fatalf("expected entry untouched, got %#v", entry)
	}
}

func TestEndThenStartYieldsCleanTable(t *testing.T) {
	rules := &Rules{Drop: 30, MiddleDrop: 45, FullCount: 90}
	game := NewGame()
	game.Start()
	if _, err := game.AddPlayer("Ada"); err != nil {
		t.Fatalf("add player: %v", err)
	}
	if err := game.AddRound(); err != nil {
		t.Fatalf("add round: %v", err)
	}
	if err := game.SetScore(0, 0, Entry{Rule: RuleDrop}); err != nil {
		t.Fatalf("set score: %v", err)
	}

	if err := game.End(); err != nil {
		t.Fatalf("end game: %v", err)
	}
	if game.InProgress || len(game.Players) != 0 || game.Rounds != 0 {
		t.Fatalf("expected cleared table, got %#v", game)
	}

	game.Start()
	if !game.InProgress || len(game.Players) != 0 || game.Rounds != 0 {
		t.Fatalf("expected fresh running game, got %#v", game)
	}
	if rules.Drop != 30 || rules.MiddleDrop != 45 || rules.FullCount != 90 {
		t.Fatalf("expected rule values untouched, got %#v", rules)
	}
}

func TestPlayerIDsAreUnique(t *testing.T) {
	game := NewGame()
	game.Start()
	seen := make(map[string]struct{})
	for _, name := range []string{"Ada", "Bob", "Cleo"} {
		player, err := game.AddPlayer(name)
		if err != nil {
			t.Fatalf("add player: %v", err)
		}
		if player.ID == "" {
			t.Fatal("expected non-empty player id")
		}
		if _, dup := seen[player.ID]; dup {
			t.Fatalf("duplicate player id %s", player.ID)
		}
		seen[player.ID] = struct{}{}
	}
}

func TestTotalsFollowSeatingOrder(t *testing.T) {
	rules := DefaultRules()
	game := NewGame()
	game.Start()
	for _, name := range []string{"Ada", "Bob"} {
		if _, err := game.AddPlayer(name); err != nil {
			t.Fatalf("add player: %v", err)
		}
	}
	if err := game.AddRound(); err != nil {
		t.Fatalf("add round: %v", err)
	}
	if err := game.SetScore(0, 0, Entry{Rule: RuleDrop}); err != nil {
		t.Fatalf("set score: %v", err)
	}
	if err := game.SetScore(1, 0, Entry{Rule: RuleFullCount}); err != nil {
		t.Fatalf("set score: %v", err)
	}

	totals := game.Totals(rules)
	if len(totals) != 2 || totals[0] != 25 || totals[1] != 80 {
		t.Fatalf("expected totals [25 80], got %v", totals)
	}
}
