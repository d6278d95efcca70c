package password

import "strings"

// Report describes how a password measures up against a strength level's
// policy. Produced for any input string, including the empty string.
type Report struct {
	Valid        bool
	HasLowercase bool
	HasUppercase bool
	HasNumbers   bool
	HasSymbols   bool
	MeetsLength  bool
	Strength     Strength
}

// Validate checks a password against a strength level's policy and returns a
// per-class breakdown. Symbol presence is detected with the extended symbol
// set regardless of level, so a high-level symbol in a low-strength password
// still reports HasSymbols; symbols only count toward validity above low.
func Validate(pw string, strength Strength) Report {
	policy := PolicyFor(strength)

	r := Report{
		HasLowercase: strings.ContainsAny(pw, lowercaseChars),
		HasUppercase: strings.ContainsAny(pw, uppercaseChars),
		HasNumbers:   strings.ContainsAny(pw, numberChars),
		HasSymbols:   strings.ContainsAny(pw, extendedSymbolChars),
		MeetsLength:  len(pw) >= policy.MinLength,
		Strength:     strength,
	}

	r.Valid = r.HasLowercase && r.HasUppercase && r.HasNumbers && r.MeetsLength &&
		(r.HasSymbols || strength == StrengthLow)

	return r
}
