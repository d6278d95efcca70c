package password

import "fmt"

const (
	lowercaseChars      = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars      = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars         = "0123456789"
	basicSymbolChars    = "!@#$%^&*"
	extendedSymbolChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// Strength selects which character classes are mandatory and the minimum length.
type Strength string

const (
	StrengthLow    Strength = "low"
	StrengthMedium Strength = "medium"
	StrengthHigh   Strength = "high"
)

// ParseStrength converts external input into a Strength, rejecting anything
// outside the three known levels.
func ParseStrength(s string) (Strength, error) {
	switch Strength(s) {
	case StrengthLow, StrengthMedium, StrengthHigh:
		return Strength(s), nil
	}
	return "", fmt.Errorf("unknown strength %q", s)
}

// Class is a named set of characters required to appear in a password.
type Class struct {
	Name  string
	Chars string
}

// Policy bundles the mandatory character classes and minimum length for a
// strength level. MinLength is always at least the number of classes, so one
// guaranteed character per class fits.
type Policy struct {
	Strength  Strength
	MinLength int
	Classes   []Class
}

var policies = map[Strength]Policy{
	StrengthLow: {
		Strength:  StrengthLow,
		MinLength: 6,
		Classes: []Class{
			{Name: "lowercase", Chars: lowercaseChars},
			{Name: "uppercase", Chars: uppercaseChars},
			{Name: "numbers", Chars: numberChars},
		},
	},
	StrengthMedium: {
		Strength:  StrengthMedium,
		MinLength: 8,
		Classes: []Class{
			{Name: "lowercase", Chars: lowercaseChars},
			{Name: "uppercase", Chars: uppercaseChars},
			{Name: "numbers", Chars: numberChars},
			{Name: "symbols", Chars: basicSymbolChars},
		},
	},
	StrengthHigh: {
		Strength:  StrengthHigh,
		MinLength: 12,
		Classes: []Class{
			{Name: "lowercase", Chars: lowercaseChars},
			{Name: "uppercase", Chars: uppercaseChars},
			{Name: "numbers", Chars: numberChars},
			{Name: "symbols", Chars: extendedSymbolChars},
		},
	},
}

// PolicyFor returns the policy for a strength level. Strength values only come
// from the constants above or ParseStrength, so the lookup cannot miss.
func PolicyFor(strength Strength) Policy {
	return policies[strength]
}

// MinimumLength returns the minimum password length for a strength level.
func MinimumLength(strength Strength) int {
	return policies[strength].MinLength
}

// CharacterClasses returns the active classes for a strength level as a
// name-to-charset map. Low has no "symbols" entry at all.
func CharacterClasses(strength Strength) map[string]string {
	p := policies[strength]
	classes := make(map[string]string, len(p.Classes))
	for _, c := range p.Classes {
		classes[c.Name] = c.Chars
	}
	return classes
}
