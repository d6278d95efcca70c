package password

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		password string
		strength Strength
		want     Report
	}{
		{
			name:     "minimal valid low",
			password: "Abc123",
			strength: StrengthLow,
			want: Report{
				Valid: true, HasLowercase: true, HasUppercase: true, HasNumbers: true,
				HasSymbols: false, MeetsLength: true, Strength: StrengthLow,
			},
		},
		{
			name:     "too short and no symbol for medium",
			password: "Abc123",
			strength: StrengthMedium,
			want: Report{
				Valid: false, HasLowercase: true, HasUppercase: true, HasNumbers: true,
				HasSymbols: false, MeetsLength: false, Strength: StrengthMedium,
			},
		},
		{
			name:     "valid medium",
			password: "Abc123!@",
			strength: StrengthMedium,
			want: Report{
				Valid: true, HasLowercase: true, HasUppercase: true, HasNumbers: true,
				HasSymbols: true, MeetsLength: true, Strength: StrengthMedium,
			},
		},
		{
			name:     "medium length under high minimum",
			password: "Abc123!@",
			strength: StrengthHigh,
			want: Report{
				Valid: false, HasLowercase: true, HasUppercase: true, HasNumbers: true,
				HasSymbols: true, MeetsLength: false, Strength: StrengthHigh,
			},
		},
		{
			name:     "valid high",
			password: "Abcdef123[]{}",
			strength: StrengthHigh,
			want: Report{
				Valid: true, HasLowercase: true, HasUppercase: true, HasNumbers: true,
				HasSymbols: true, MeetsLength: true, Strength: StrengthHigh,
			},
		},
		{
			name:     "missing uppercase",
			password: "abcdefgh123!",
			strength: StrengthMedium,
			want: Report{
				Valid: false, HasLowercase: true, HasUppercase: false, HasNumbers: true,
				HasSymbols: true, MeetsLength: true, Strength: StrengthMedium,
			},
		},
		{
			name:     "extended symbol detected for low",
			password: "Abc12[",
			strength: StrengthLow,
			want: Report{
				Valid: true, HasLowercase: true, HasUppercase: true, HasNumbers: true,
				HasSymbols: true, MeetsLength: true, Strength: StrengthLow,
			},
		},
		{
			name:     "extended symbol satisfies medium",
			password: "Abc1234]",
			strength: StrengthMedium,
			want: Report{
				Valid: true, HasLowercase: true, HasUppercase: true, HasNumbers: true,
				HasSymbols: true, MeetsLength: true, Strength: StrengthMedium,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Validate(tt.password, tt.strength); got != tt.want {
				t.Errorf("Validate(%q, %s) = %+v, want %+v", tt.password, tt.strength, got, tt.want)
			}
		})
	}
}

func TestValidateEmptyString(t *testing.T) {
	for _, strength := range []Strength{StrengthLow, StrengthMedium, StrengthHigh} {
		got := Validate("", strength)
		want := Report{Strength: strength}
		if got != want {
			t.Errorf("Validate(\"\", %s) = %+v, want all flags false", strength, got)
		}
	}
}
