package service

import (
	"errors"
	"fmt"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/password"
)

// MaxLength caps requested lengths at the service boundary so the public
// endpoint stays bounded. The core engine itself has no upper limit.
const MaxLength = 128

var (
	ErrUnknownStrength = errors.New("strength must be one of: low, medium, high")
	ErrLengthTooLong   = fmt.Errorf("password length must be at most %d", MaxLength)
)

// GeneratorService handles password generation and validation business logic.
type GeneratorService struct {
	gen *password.Generator
}

// NewGeneratorService creates a GeneratorService backed by crypto/rand.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{gen: password.NewGenerator()}
}

// Generate produces a password for the given request. An absent strength
// defaults to medium; an absent length defaults to the policy minimum.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	strength, err := parseStrength(req.Strength)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	length := req.Length
	if length == 0 {
		length = password.MinimumLength(strength)
	}
	if length > MaxLength {
		return model.GenerateResponse{}, ErrLengthTooLong
	}

	pw, err := s.gen.Generate(length, strength)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: pw,
		Length:   len(pw),
		Strength: string(strength),
	}, nil
}

// Validate checks a password against a strength level's policy. Any password
// string is accepted; only an unknown strength is an error.
func (s *GeneratorService) Validate(req model.ValidateRequest) (model.ValidationResponse, error) {
	strength, err := parseStrength(req.Strength)
	if err != nil {
		return model.ValidationResponse{}, err
	}

	report := password.Validate(req.Password, strength)
	return model.ValidationResponse{
		Valid:        report.Valid,
		HasLowercase: report.HasLowercase,
		HasUppercase: report.HasUppercase,
		HasNumbers:   report.HasNumbers,
		HasSymbols:   report.HasSymbols,
		MeetsLength:  report.MeetsLength,
		Strength:     string(report.Strength),
	}, nil
}

// Policy returns the minimum length and active character classes for a
// strength level, for callers that clamp their length input.
func (s *GeneratorService) Policy(strength string) (model.PolicyResponse, error) {
	parsed, err := parseStrength(strength)
	if err != nil {
		return model.PolicyResponse{}, err
	}

	return model.PolicyResponse{
		Strength:  string(parsed),
		MinLength: password.MinimumLength(parsed),
		Classes:   password.CharacterClasses(parsed),
	}, nil
}

// parseStrength applies the medium default before delegating to the core.
func parseStrength(s string) (password.Strength, error) {
	if s == "" {
		return password.StrengthMedium, nil
	}
	strength, err := password.ParseStrength(s)
	if err != nil {
		return "", ErrUnknownStrength
	}
	return strength, nil
}
