package model

// GenerateRequest represents a password generation request. A zero length
// means "use the policy minimum"; an empty strength defaults to medium.
type GenerateRequest struct {
	Length   int    `json:"length"`
	Strength string `json:"strength"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
	Strength string `json:"strength"`
}

// ValidateRequest represents a password validation request.
type ValidateRequest struct {
	Password string `json:"password"`
	Strength string `json:"strength"`
}

// ValidationResponse represents the per-class breakdown of a validation check.
type ValidationResponse struct {
	Valid        bool   `json:"valid"`
	HasLowercase bool   `json:"has_lowercase"`
	HasUppercase bool   `json:"has_uppercase"`
	HasNumbers   bool   `json:"has_numbers"`
	HasSymbols   bool   `json:"has_symbols"`
	MeetsLength  bool   `json:"meets_length"`
	Strength     string `json:"strength"`
}

// PolicyResponse describes the requirements of a strength level. Classes maps
// class name to its character set; low strength has no "symbols" key.
type PolicyResponse struct {
	Strength  string            `json:"strength"`
	MinLength int               `json:"min_length"`
	Classes   map[string]string `json:"classes"`
}
