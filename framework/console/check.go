package console

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/km-arc/go-forms/framework/forms"
	"github.com/km-arc/go-forms/framework/http/validation"
)

// LoadState reads a flat object of field values from a .yaml, .yml or .json
// file. Scalars keep their literal text, so an unquoted 0551234567 stays a
// ten digit phone number.
func LoadState(path string) (validation.State, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var st validation.State
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		st, err = yamlState(b)
	case ".json":
		st, err = jsonState(b)
	default:
		return nil, fmt.Errorf("%s: unsupported file type %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return st, nil
}

func yamlState(b []byte) (validation.State, error) {
	var nodes map[string]yaml.Node
	if err := yaml.Unmarshal(b, &nodes); err != nil {
		return nil, err
	}
	st := make(validation.State, len(nodes))
	for k, n := range nodes {
		if n.Kind == yaml.AliasNode && n.Alias != nil {
			n = *n.Alias
		}
		if n.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("field %q: expected a scalar value", k)
		}
		switch n.Tag {
		case "!!null":
			st[k] = ""
		case "!!bool":
			var on bool
			if err := n.Decode(&on); err != nil {
				return nil, fmt.Errorf("field %q: %w", k, err)
			}
			st.Set(k, checkbox(on))
		default:
			st[k] = n.Value
		}
	}
	return st, nil
}

func jsonState(b []byte) (validation.State, error) {
	var raw map[string]any
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	return validation.StateFrom(raw)
}

func checkbox(on bool) string {
	if on {
		return forms.CheckboxOn
	}
	return ""
}

// Check validates the values in path against the named form and writes one
// "field: message" line per failure, in field order. It reports whether the
// values are valid.
func Check(reg *forms.Registry, form, path string, out io.Writer) (bool, error) {
	def, err := reg.Definition(form)
	if err != nil {
		return false, err
	}
	state, err := LoadState(path)
	if err != nil {
		return false, err
	}

	res := def.Rules.Submit(state)
	if res.Accepted() {
		_, err := fmt.Fprintf(out, "%s: valid\n", form)
		return true, err
	}
	for _, e := range res.Err().(validation.ErrorList) {
		if _, err := fmt.Fprintf(out, "%s: %s\n", e.Field, e.Message); err != nil {
			return false, err
		}
	}
	return false, nil
}
