package password

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// InvalidLengthError reports a requested length below the policy minimum for
// the chosen strength level.
type InvalidLengthError struct {
	Length    int
	Strength  Strength
	MinLength int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("length %d is below the %s minimum of %d", e.Length, e.Strength, e.MinLength)
}

// Source yields uniform random indices. IntN must return a value in [0, n) for
// n > 0, with each value equally likely.
type Source interface {
	IntN(n int) (int, error)
}

// cryptoSource draws from crypto/rand.
type cryptoSource struct{}

func (cryptoSource) IntN(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// Generator produces passwords satisfying a strength level's policy.
type Generator struct {
	src Source
}

// NewGenerator creates a Generator backed by crypto/rand.
func NewGenerator() *Generator {
	return &Generator{src: cryptoSource{}}
}

// NewGeneratorWithSource creates a Generator drawing from the given source.
// Intended for substituting a deterministic source in tests.
func NewGeneratorWithSource(src Source) *Generator {
	return &Generator{src: src}
}

// Generate creates a random password of exactly the requested length that
// contains at least one character from every class mandated by the strength
// level's policy.
func (g *Generator) Generate(length int, strength Strength) (string, error) {
	policy := PolicyFor(strength)
	if length < policy.MinLength {
		return "", &InvalidLengthError{Length: length, Strength: strength, MinLength: policy.MinLength}
	}

	result := make([]byte, 0, length)

	// One guaranteed character per mandatory class.
	for _, class := range policy.Classes {
		ch, err := g.randChar(class.Chars)
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	// Fill the remaining positions from the union of all classes.
	var pool string
	for _, class := range policy.Classes {
		pool += class.Chars
	}
	for len(result) < length {
		ch, err := g.randChar(pool)
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	// Fisher-Yates so the guaranteed characters are not stuck at the front.
	for i := len(result) - 1; i > 0; i-- {
		j, err := g.src.IntN(i + 1)
		if err != nil {
			return "", err
		}
		result[i], result[j] = result[j], result[i]
	}

	return string(result), nil
}

func (g *Generator) randChar(charset string) (byte, error) {
	n, err := g.src.IntN(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

var defaultGenerator = NewGenerator()

// Generate creates a password using the default crypto/rand-backed generator.
func Generate(length int, strength Strength) (string, error) {
	return defaultGenerator.Generate(length, strength)
}
