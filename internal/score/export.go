package score

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// ExportCSV renders the score table as comma-separated text: a header row,
// one row per round in order, and a trailing totals row. Columns follow
// player seating order; downstream consumers rely on both orderings.
func ExportCSV(g *Game, rules *Rules) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, 0, len(g.Players)+1)
	header = append(header, "Round")
	for i := range g.Players {
		header = append(header, g.Players[i].Name)
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for round := 0; round < g.Rounds; round++ {
		row := make([]string, 0, len(g.Players)+1)
		row = append(row, strconv.Itoa(round+1))
		for i := range g.Players {
			row = append(row, exportCell(g.Players[i].Scores[round]))
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	totals := make([]string, 0, len(g.Players)+1)
	totals = append(totals, "Total")
	for _, total := range g.Totals(rules) {
		totals = append(totals, strconv.Itoa(total))
	}
	if err := w.Write(totals); err != nil {
		return nil, err
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// exportCell shows the rule label, except custom entries which show their
// literal value.
func exportCell(entry Entry) string {
	if entry.Rule == RuleCustom {
		if entry.Value == nil {
			return "0"
		}
		return strconv.Itoa(*entry.Value)
	}
	return entry.Rule.Label()
}
