package provider

import (
	stderrors "errors"
	"strconv"
	"strings"

	"github.com/chu3/chu3-discord-bot-go/pkg/errors"
)

// Source names an upstream data source.
type Source string

const (
	// SourcePrimary is the wiki-style API queried for plain numeric ids.
	SourcePrimary Source = "primary"
	// SourceMirror is the raw-file mirror selected by the "pjsk" prefix.
	SourceMirror Source = "mirror"
)

// Identifier is a routed entity identifier.
type Identifier struct {
	Source Source
	ID     int
}

// mirrorPrefix routes an identifier to the raw-file mirror, case-insensitive.
const mirrorPrefix = "pjsk"

// ErrMissingArgument is returned for an absent identifier. Commands answer it
// with the usage message rather than an error reply.
var ErrMissingArgument = stderrors.New("missing identifier argument")

// Route decomposes a raw identifier token into its source and numeric id.
// Ids starting with "pjsk" go to the mirror with the remaining digits; all
// other tokens must parse as a non-negative integer for the primary source.
// Both malformed paths return a ValidationError.
func Route(raw string) (Identifier, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Identifier{}, ErrMissingArgument
	}

	if strings.HasPrefix(strings.ToLower(trimmed), mirrorPrefix) {
		rest := trimmed[len(mirrorPrefix):]
		id, err := parseDigits(rest)
		if err != nil {
			return Identifier{}, errors.NewValidationError("invalid mirror id", "id", trimmed)
		}
		return Identifier{Source: SourceMirror, ID: id}, nil
	}

	id, err := strconv.Atoi(trimmed)
	if err != nil || id < 0 {
		return Identifier{}, errors.NewValidationError("invalid id", "id", trimmed)
	}
	return Identifier{Source: SourcePrimary, ID: id}, nil
}

// parseDigits parses an all-decimal-digit string. Unlike strconv.Atoi it
// rejects signs and whitespace outright.
func parseDigits(s string) (int, error) {
	if s == "" {
		return 0, stderrors.New("empty digit string")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, stderrors.New("non-digit character")
		}
	}
	return strconv.Atoi(s)
}
