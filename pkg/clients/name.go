package clients

import (
	"fmt"
	"strings"
)

// Name identifies a registered client. Lookups are case-insensitive.
type Name string

// Known client names.
const (
	GitHubAPI Name = "GitHubApi"
	Basic     Name = "BasicClient"
	DogAPI    Name = "DogApi"
)

// ParseName trims and validates raw into a Name.
func ParseName(raw string) (Name, error) {
	n := Name(strings.TrimSpace(raw))
	if err := n.Validate(); err != nil {
		return "", err
	}
	return n, nil
}

// Validate reports whether n is a usable client name.
func (n Name) Validate() error {
	s := strings.TrimSpace(string(n))
	if s == "" {
		return fmt.Errorf("%w: client name is empty", ErrInvalidDefinition)
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.':
		default:
			return fmt.Errorf("%w: client name %q contains %q", ErrInvalidDefinition, s, r)
		}
	}
	return nil
}

func (n Name) String() string { return string(n) }

func (n Name) key() string {
	return strings.ToLower(strings.TrimSpace(string(n)))
}
