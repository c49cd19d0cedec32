package score

// Default point values for the configurable rules.
const (
	DefaultDrop       = 25
	DefaultMiddleDrop = 40
	DefaultFullCount  = 80
)

// Rules holds the configurable point values. One instance is live for the
// whole session and shared by pointer, so a change shows up in every total
// immediately, including rounds entered before the change.
type Rules struct {
	Drop       int `json:"drop"`
	MiddleDrop int `json:"middle_drop"`
	FullCount  int `json:"full_count"`
}

func DefaultRules() *Rules {
	return &Rules{
		Drop:       DefaultDrop,
		MiddleDrop: DefaultMiddleDrop,
		FullCount:  DefaultFullCount,
	}
}
