package server

import (
	"strconv"
	"strings"
)

// parseScorePath matches /api/game/players/{playerIndex}/rounds/{roundIndex}
// with non-negative integer indices.
func parseScorePath(path string) (int, int, bool) {
	const prefix = "/api/game/players/"
	if !strings.HasPrefix(path, prefix) {
		return 0, 0, false
	}
	rest := strings.TrimPrefix(path, prefix)
	parts := strings.Split(strings.Trim(rest, "/"), "/")
	if len(parts) != 3 || parts[1] != "rounds" {
		return 0, 0, false
	}
	playerIndex, err := strconv.Atoi(parts[0])
	if err != nil || playerIndex < 0 {
		return 0, 0, false
	}
	roundIndex, err := strconv.Atoi(parts[2])
	if err != nil || roundIndex < 0 {
		return 0, 0, false
	}
	return playerIndex, roundIndex, true
}
