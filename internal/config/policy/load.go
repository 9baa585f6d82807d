// Package policy loads the budget policy file and keeps it current while
// the daemon runs.
package policy

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	yaml "go.yaml.in/yaml/v3"

	"budget-scheduler/internal/core/domain"
)

// Load reads, decodes and validates the policy at path. JSON and YAML are
// accepted, picked by file extension.
func Load(path string) (domain.Policy, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Policy{}, fmt.Errorf("read policy: %w", err)
	}
	p, err := Parse(path, b)
	if err != nil {
		return domain.Policy{}, fmt.Errorf("policy %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes data as the policy stored at path. Unknown fields are
// rejected and omitted fields keep the values of domain.DefaultPolicy.
func Parse(path string, data []byte) (domain.Policy, error) {
	jb, err := coerceToJSON(path, data)
	if err != nil {
		return domain.Policy{}, err
	}

	p := domain.DefaultPolicy()
	dec := json.NewDecoder(bytes.NewReader(jb))
	dec.DisallowUnknownFields()
	if err = dec.Decode(&p); err != nil {
		return domain.Policy{}, fmt.Errorf("%w: %v", domain.ErrInvalidPolicy, err)
	}
	// reject trailing tokens (e.g. concatenated JSON)
	if err = dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			return domain.Policy{}, fmt.Errorf("%w: trailing data", domain.ErrInvalidPolicy)
		}
		return domain.Policy{}, fmt.Errorf("%w: %v", domain.ErrInvalidPolicy, err)
	}
	if err = p.Validate(); err != nil {
		return domain.Policy{}, err
	}
	return p, nil
}

// coerceToJSON converts YAML documents to JSON so both formats go through
// the same strict decoder.
func coerceToJSON(path string, data []byte) ([]byte, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return data, nil
	}

	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: yaml: %v", domain.ErrInvalidPolicy, err)
	}
	j, err := json.Marshal(normalizeYAML(v))
	if err != nil {
		return nil, fmt.Errorf("%w: yaml to json: %v", domain.ErrInvalidPolicy, err)
	}
	return j, nil
}

// normalizeYAML makes every map key a string so the value can be
// marshalled as JSON.
func normalizeYAML(in any) any {
	switch x := in.(type) {
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, v := range x {
			m[fmt.Sprint(k)] = normalizeYAML(v)
		}
		return m
	case map[string]any:
		m := make(map[string]any, len(x))
		for k, v := range x {
			m[k] = normalizeYAML(v)
		}
		return m
	case []any:
		for i := range x {
			x[i] = normalizeYAML(x[i])
		}
		return x
	default:
		return in
	}
}
