package password

import "testing"

func TestMinimumLength(t *testing.T) {
	tests := []struct {
		strength Strength
		want     int
	}{
		{StrengthLow, 6},
		{StrengthMedium, 8},
		{StrengthHigh, 12},
	}

	for _, tt := range tests {
		if got := MinimumLength(tt.strength); got != tt.want {
			t.Errorf("MinimumLength(%s) = %d, want %d", tt.strength, got, tt.want)
		}
	}
}

func TestCharacterClasses(t *testing.T) {
	tests := []struct {
		strength    Strength
		wantCount   int
		wantSymbols string
	}{
		{StrengthLow, 3, ""},
		{StrengthMedium, 4, "!@#$%^&*"},
		{StrengthHigh, 4, "!@#$%^&*()_+-=[]{}|;:,.<>?"},
	}

	for _, tt := range tests {
		t.Run(string(tt.strength), func(t *testing.T) {
			classes := CharacterClasses(tt.strength)
			if len(classes) != tt.wantCount {
				t.Errorf("got %d classes, want %d", len(classes), tt.wantCount)
			}

			symbols, ok := classes["symbols"]
			if tt.wantSymbols == "" {
				if ok {
					t.Errorf("unexpected symbols entry %q for %s", symbols, tt.strength)
				}
				return
			}
			if !ok {
				t.Fatalf("missing symbols entry for %s", tt.strength)
			}
			if symbols != tt.wantSymbols {
				t.Errorf("symbols = %q, want %q", symbols, tt.wantSymbols)
			}
		})
	}
}

func TestPolicyFitsOneCharacterPerClass(t *testing.T) {
	for _, strength := range []Strength{StrengthLow, StrengthMedium, StrengthHigh} {
		p := PolicyFor(strength)
		if p.MinLength < len(p.Classes) {
			t.Errorf("%s: min length %d is below class count %d", strength, p.MinLength, len(p.Classes))
		}
		for _, c := range p.Classes {
			if c.Chars == "" {
				t.Errorf("%s: class %q has no characters", strength, c.Name)
			}
		}
	}
}

func TestParseStrength(t *testing.T) {
	tests := []struct {
		input   string
		want    Strength
		wantErr bool
	}{
		{"low", StrengthLow, false},
		{"medium", StrengthMedium, false},
		{"high", StrengthHigh, false},
		{"", "", true},
		{"Medium", "", true},
		{"extreme", "", true},
	}

	for _, tt := range tests {
		got, err := ParseStrength(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseStrength(%q) expected error, got %q", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseStrength(%q) unexpected error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseStrength(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
