package score

import "testing"

func TestExportCSV(t *testing.T) {
	rules := DefaultRules()
	game := NewGame()
	game.Start()
	for _, name := range []string{"A", "B"} {
		if _, err := game.AddPlayer(name); err != nil {
			t.Fatalf("add player: %v", err)
		}
	}
	for i := 0; i < 3; i++ {
		if err := game.AddRound(); err != nil {
			t.Fatalf("add round: %v", err)
		}
	}
	set := func(player, round int, entry Entry) {
		t.Helper()
		if err := game.SetScore(player, round, entry); err != nil {
			t.Fatalf("set score: %v", err)
		}
	}
	set(0, 1, Entry{Rule: RuleDrop})
	set(1, 1, Entry{Rule: RuleGame})
	set(0, 2, Entry{Rule: RuleCustom, Value: intPtr(17)})
	set(1, 2, Entry{Rule: RuleFullCount})

	data, err := ExportCSV(game, rules)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	want := "Round,A,B\n" +
		"1,Zero,Zero\n" +
		"2,Drop,Game\n" +
		"3,17,Full Count\n" +
		"Total,42,80\n"
	if string(data) != want {
		t.Fatalf("unexpected export:\n%s\nwant:\n%s", data, want)
	}
}

func TestExportCSVEmptyGame(t *testing.T) {
	game := NewGame()
	data, err := ExportCSV(game, DefaultRules())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if string(data) != "Round\nTotal\n" {
		t.Fatalf("unexpected export: %q", data)
	}
}

func TestExportCSVQuotesAwkwardNames(t *testing.T) {
	game := NewGame()
	game.Start()
	if _, err := game.AddPlayer("Smith, Ada"); err != nil {
		t.Fatalf("add player: %v", err)
	}

	data, err := ExportCSV(game, DefaultRules())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if string(data) != "Round,\"Smith, Ada\"\nTotal,0\n" {
		t.Fatalf("unexpected export: %q", data)
	}
}

func TestExportCSVCustomWithoutValue(t *testing.T) {
	game := NewGame()
	game.Start()
	if _, err := game.AddPlayer("Ada"); err != nil {
		t.Fatalf("add player: %v", err)
	}
	if err := game.AddRound(); err != nil {
		t.Fatalf("add round: %v", err)
	}
	if err := game.SetScore(0, 0, Entry{Rule: RuleCustom}); err != nil {
		t.Fatalf("set score: %v", err)
	}

	data, err := ExportCSV(game, DefaultRules())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if string(data) != "Round,Ada\n1,0\nTotal,0\n" {
		t.Fatalf("unexpected export: %q", data)
	}
}
