package server

import "rummy-tally/internal/score"

// buildSnapshot flattens the table into the payload served by the API and
// pushed over the websocket feed. Totals are computed here, against the
// live rule values, so every snapshot reflects the current configuration.
func buildSnapshot(game *score.Game, rules *score.Rules) map[string]any {
	players := make([]map[string]any, 0, len(game.Players))
	for i := range game.Players {
		player := &game.Players[i]
		scores := make([]map[string]any, 0, len(player.Scores))
		for _, entry := range player.Scores {
			item := map[string]any{
				"rule":   string(entry.Rule),
				"label":  entry.Rule.Label(),
				"points": entry.Points(rules),
			}
			if entry.Rule == score.RuleCustom && entry.Value != nil {
				item["value"] = *entry.Value
			}
			scores = append(scores, item)
		}
		players = append(players, map[string]any{
			"id":     player.ID,
			"name":   player.Name,
			"scores": scores,
			"total":  player.Total(rules),
		})
	}
	return map[string]any{
		"players":     players,
		"round_count": game.Rounds,
		"in_progress": game.InProgress,
		"rules":       rulesPayload(*rules),
	}
}

func rulesPayload(rules score.Rules) map[string]int {
	return map[string]int{
		"drop":        rules.Drop,
		"middle_drop": rules.MiddleDrop,
		"full_count":  rules.FullCount,
	}
}
