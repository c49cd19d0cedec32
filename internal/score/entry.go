package score

// Entry is one player's score for one round. Value is meaningful only when
// Rule is RuleCustom; for every other rule it is ignored even when a stale
// snapshot left one behind.
type Entry struct {
	Rule  Rule `json:"rule"`
	Value *int `json:"value,omitempty"`
}

func zeroEntry() Entry {
	return Entry{Rule: RuleZero}
}

// Points resolves the entry against the live rule values. A custom entry
// without a value counts as 0, as does an unknown rule tag.
func (e Entry) Points(rules *Rules) int {
	switch e.Rule {
	case RuleDrop:
		return rules.Drop
	case RuleMiddleDrop:
		return rules.MiddleDrop
	case RuleFullCount:
		return rules.FullCount
	case RuleCustom:
		if e.Value == nil {
			return 0
		}
		return *e.Value
	}
	return 0
}
