package timeline

import (
	"regexp"
	"sort"
)

// Rule maps a regex pattern to a user-defined category. Higher priority
// rules are evaluated first; declaration order breaks ties.
type Rule struct {
	Pattern  string `json:"pattern"`
	Category string `json:"category"`
	Priority int    `json:"priority"`
}

// InvalidRule reports a rule whose pattern failed to compile. Such
// rules are filtered out at compile time instead of failing every
// classification attempt.
type InvalidRule struct {
	Rule Rule
	Err  error
}

type compiledRule struct {
	re       *regexp.Regexp
	category string
}

// RuleSet is an ordered, pre-compiled rule list. Build one per settings
// load, never per match.
type RuleSet struct {
	rules []compiledRule
}

// CompileRules orders rules by priority (descending, stable) and
// compiles their patterns case-insensitively. Rules that do not compile
// are returned separately so the caller can log them; classification
// proceeds with whatever compiled.
func CompileRules(rules []Rule) (RuleSet, []InvalidRule) {
	ordered := make([]Rule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})

	var invalid []InvalidRule
	rs := RuleSet{rules: make([]compiledRule, 0, len(ordered))}
	for _, r := range ordered {
		re, err := regexp.Compile("(?i)" + r.Pattern)
		if err != nil {
			invalid = append(invalid, InvalidRule{Rule: r, Err: err})
			continue
		}
		rs.rules = append(rs.rules, compiledRule{re: re, category: r.Category})
	}
	return rs, invalid
}

// Len reports how many rules compiled.
func (rs RuleSet) Len() int {
	return len(rs.rules)
}

// Subject builds the string rules are matched against: the app name,
// extended with the window title when one was captured.
func Subject(appName, windowTitle string) string {
	if windowTitle == "" {
		return appName
	}
	return appName + " :: " + windowTitle
}

// Categorize returns the category of the first rule matching the
// subject. When nothing matches, the raw app name is the category:
// unclassified activity is surfaced under its own name, never dropped.
func (rs RuleSet) Categorize(appName, windowTitle string) string {
	subject := Subject(appName, windowTitle)
	for _, r := range rs.rules {
		if r.re.MatchString(subject) {
			return r.category
		}
	}
	return appName
}
