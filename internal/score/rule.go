package score

// Rule names the scoring category attached to one round entry.
type Rule string

const (
	RuleZero       Rule = "zero"
	RuleGame       Rule = "game"
	RuleDrop       Rule = "drop"
	RuleMiddleDrop Rule = "middle-drop"
	RuleFullCount  Rule = "full-count"
	RuleCustom     Rule = "custom"
)

// Valid reports whether r is one of the known rules.
func (r Rule) Valid() bool {
	switch r {
	case RuleZero, RuleGame, RuleDrop, RuleMiddleDrop, RuleFullCount, RuleCustom:
		return true
	}
	return false
}

// Label returns the display token used on score sheets and exports.
func (r Rule) Label() string {
	switch r {
	case RuleZero:
		return "Zero"
	case RuleGame:
		return "Game"
	case RuleDrop:
		return "Drop"
	case RuleMiddleDrop:
		return "Middle Drop"
	case RuleFullCount:
		return "Full Count"
	case RuleCustom:
		return "Custom"
	}
	return "Zero"
}
