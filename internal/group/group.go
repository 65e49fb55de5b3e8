// Package group implements the robots.txt group-selection state machine:
// given a stream of tokenized directives and a configured agent key, it
// decides which User-agent block's Allow/Disallow lines actually apply.
package group

import (
	"net/url"
	"strings"

	"github.com/alexanderjkslfj/nicebot/internal/directive"
)

// state tracks which User-agent block is currently open, in attuned mode.
type state int

const (
	stateNo state = iota
	stateStar
	stateYes
)

// Rule is a normalized (allow/disallow, pattern) pair, ready for
// insertion into a pattern trie.
type Rule struct {
	Allow   bool
	Pattern string
}

// Select runs the group-selection algorithm over pairs for agentKey
// (already ASCII-lowercased by the caller) and returns the surviving
// rules.
//
// When agentKey is non-empty ("attuned" mode), a specific User-agent
// group that ever matches entirely overrides any "*" group, even one
// that appeared earlier in the input — the decision can only be made
// after the whole input is seen, so candidates are buffered and resolved
// in a second pass. When agentKey is empty ("unattuned" mode), only "*"
// groups are considered, in a single pass.
func Select(pairs []directive.Pair, agentKey string, decodePercent bool) []Rule {
	if agentKey == "" {
		return selectUnattuned(pairs, decodePercent)
	}
	return selectAttuned(pairs, agentKey, decodePercent)
}

type candidate struct {
	inStar bool // group state was Star, not Yes
	rule   Rule
}

func selectAttuned(pairs []directive.Pair, agentKey string, decodePercent bool) []Rule {
	cur := stateNo
	precise := false
	var candidates []candidate

	for _, p := range pairs {
		switch p.Key {
		case "user-agent":
			cur = transition(p.Value, agentKey)
			if cur == stateYes {
				precise = true
			}
		case "allow", "disallow":
			if cur == stateNo {
				continue
			}
			candidates = append(candidates, candidate{
				inStar: cur == stateStar,
				rule:   Rule{Allow: p.Key == "allow", Pattern: normalize(p.Value, decodePercent)},
			})
		}
	}

	rules := make([]Rule, 0, len(candidates))
	for _, c := range candidates {
		if !c.inStar || !precise {
			rules = append(rules, c.rule)
		}
	}
	return rules
}

func selectUnattuned(pairs []directive.Pair, decodePercent bool) []Rule {
	inStar := false
	var rules []Rule

	for _, p := range pairs {
		switch p.Key {
		case "user-agent":
			inStar = p.Value == "*"
		case "allow", "disallow":
			if !inStar {
				continue
			}
			rules = append(rules, Rule{Allow: p.Key == "allow", Pattern: normalize(p.Value, decodePercent)})
		}
	}
	return rules
}

// transition decides the next group state for a User-agent value: "*"
// selects the default group, any value whose ASCII-lowercase form
// contains agentKey selects the specific group, everything else closes
// the group.
func transition(value, agentKey string) state {
	switch {
	case value == "*":
		return stateStar
	case strings.Contains(strings.Map(func(r rune) rune {
		if 'A' <= r && r <= 'Z' {
			return r + 'a' - 'A'
		}
		return r
	}, value), agentKey):
		return stateYes
	default:
		return stateNo
	}
}

// normalize converts a trailing "$" into the end-anchor sentinel and,
// optionally, percent-decodes the value. A decode failure keeps the raw
// value.
func normalize(value string, decodePercent bool) string {
	if strings.HasSuffix(value, "$") {
		value = value[:len(value)-1] + "\x00"
	}
	if decodePercent {
		if decoded, err := url.PathUnescape(value); err == nil {
			return decoded
		}
	}
	return value
}
