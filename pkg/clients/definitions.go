package clients

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultUserAgent is sent by every built-in client.
const DefaultUserAgent = "PocHttpClientApp"

// Definition is the configuration registered under a client name.
type Definition struct {
	Name    Name              `json:"name" yaml:"name"`
	BaseURL string            `json:"base_url" yaml:"base_url"`
	Headers map[string]string `json:"headers" yaml:"headers"`
}

// definitionsFile represents the structure of the clients configuration file.
type definitionsFile struct {
	Clients []Definition `json:"clients" yaml:"clients"`
}

// DefaultDefinitions returns the built-in clients used by the demo.
func DefaultDefinitions(userAgent string) []Definition {
	if strings.TrimSpace(userAgent) == "" {
		userAgent = DefaultUserAgent
	}
	return []Definition{
		{
			Name:    GitHubAPI,
			BaseURL: "https://api.github.com/",
			Headers: map[string]string{
				"Accept":     "application/vnd.github+json",
				"User-Agent": userAgent,
			},
		},
		{
			Name:    Basic,
			Headers: map[string]string{"User-Agent": userAgent},
		},
		{
			Name:    DogAPI,
			BaseURL: "https://dog.ceo/",
			Headers: map[string]string{"User-Agent": userAgent},
		},
	}
}

// LoadDefinitions reads client definitions from a YAML/JSON file.
func LoadDefinitions(path string) ([]Definition, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("clients file path is empty")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open clients file: %w", err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read clients file: %w", err)
	}

	parsed, err := parseDefinitions(raw, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	if len(parsed.Clients) == 0 {
		return nil, errors.New("clients file contains no clients entries")
	}

	seen := make(map[string]struct{}, len(parsed.Clients))
	out := make([]Definition, 0, len(parsed.Clients))
	for i := range parsed.Clients {
		def := sanitizeDefinition(parsed.Clients[i])
		if err := validateDefinition(def); err != nil {
			return nil, fmt.Errorf("clients[%d]: %w", i, err)
		}
		if _, exists := seen[def.Name.key()]; exists {
			return nil, fmt.Errorf("%w: duplicate client name %q", ErrDuplicateClient, def.Name)
		}
		seen[def.Name.key()] = struct{}{}
		out = append(out, def)
	}
	return out, nil
}

// parseDefinitions attempts to decode the clients file content.
func parseDefinitions(data []byte, ext string) (definitionsFile, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))
	decoders := []struct {
		name string
		ext  string
		fn   func([]byte, any) error
	}{
		{name: "yaml", ext: ".yaml", fn: yaml.Unmarshal},
		{name: "yaml", ext: ".yml", fn: yaml.Unmarshal},
		{name: "json", ext: ".json", fn: json.Unmarshal},
	}

	for _, d := range decoders {
		if ext != "" && ext != d.ext {
			continue
		}
		var f definitionsFile
		if err := d.fn(data, &f); err == nil {
			return f, nil
		}
	}

	return definitionsFile{}, errors.New("clients file format not recognized (expected YAML or JSON)")
}

// sanitizeDefinition trims fields and copies headers so the caller's map is never shared.
func sanitizeDefinition(def Definition) Definition {
	def.Name = Name(strings.TrimSpace(string(def.Name)))
	def.BaseURL = strings.TrimSpace(def.BaseURL)
	def.Headers = sanitizeHeaders(def.Headers)
	return def
}

// sanitizeHeaders trims and removes empty headers.
func sanitizeHeaders(headers map[string]string) map[string]string {
	if len(headers) == 0 {
		return nil
	}
	out := make(map[string]string, len(headers))
	for k, v := range headers {
		key := strings.TrimSpace(k)
		val := strings.TrimSpace(v)
		if key == "" || val == "" {
			continue
		}
		out[key] = val
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// validateDefinition checks name and base URL.
func validateDefinition(def Definition) error {
	if err := def.Name.Validate(); err != nil {
		return err
	}
	if def.BaseURL == "" {
		return nil
	}
	u, err := url.Parse(def.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: base_url for client %q: %v", ErrInvalidDefinition, def.Name, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: base_url for client %q must be an absolute http(s) URL", ErrInvalidDefinition, def.Name)
	}
	return nil
}

func copyHeaders(headers map[string]string) map[string]string {
	if headers == nil {
		return nil
	}
	out := make(map[string]string, len(headers))
	for k, v := range headers {
		out[k] = v
	}
	return out
}
