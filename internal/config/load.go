package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

const optionsSchemaText = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "filepath": {"type": "string"},
    "start_line": {"type": "integer", "minimum": 1},
    "start_offset": {"type": "integer", "minimum": 0},
    "encoding_hint": {"type": "string"},
    "frozen_string_literal": {"type": "boolean"},
    "command_line_flags": {"type": "integer", "minimum": 0, "maximum": 255},
    "version": {"type": "string"},
    "outer_scopes": {
      "type": "array",
      "items": {"type": "array", "items": {"type": "string"}}
    }
  },
  "additionalProperties": false
}`

var optionsSchema = mustCompileOptionsSchema()

func mustCompileOptionsSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("rubyparse://options.schema.json", bytes.NewReader([]byte(optionsSchemaText))); err != nil {
		panic(err)
	}
	return compiler.MustCompile("rubyparse://options.schema.json")
}

// serializedOptions is the wire shape LoadOptions decodes into before
// translating to Options; field names match the JSON schema above and the
// YAML rendition of the same document.
type serializedOptions struct {
	Filepath            string     `json:"filepath" yaml:"filepath"`
	StartLine           int        `json:"start_line" yaml:"start_line"`
	StartOffset         int        `json:"start_offset" yaml:"start_offset"`
	EncodingHint        string     `json:"encoding_hint" yaml:"encoding_hint"`
	FrozenStringLiteral bool       `json:"frozen_string_literal" yaml:"frozen_string_literal"`
	CommandLineFlags    uint8      `json:"command_line_flags" yaml:"command_line_flags"`
	Version             string     `json:"version" yaml:"version"`
	OuterScopes         [][]string `json:"outer_scopes" yaml:"outer_scopes"`
}

// LoadOptions decodes a JSON or YAML options blob (distinguished by
// sniffing the first non-whitespace byte: `{` or `[` means JSON, anything
// else is tried as YAML), schema-validates the JSON form, and rejects a
// `version` that NormalizeVersion does not accept; the returned Version
// keeps the caller's spelling rather than the normalized semver string.
func LoadOptions(blob []byte) (Options, error) {
	trimmed := bytes.TrimSpace(blob)
	var so serializedOptions

	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		var doc interface{}
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return Options{}, fmt.Errorf("config: invalid JSON: %w", err)
		}
		if err := optionsSchema.Validate(doc); err != nil {
			return Options{}, fmt.Errorf("config: schema validation failed: %w", err)
		}
		if err := json.Unmarshal(trimmed, &so); err != nil {
			return Options{}, fmt.Errorf("config: decode failed: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(trimmed, &so); err != nil {
			return Options{}, fmt.Errorf("config: invalid YAML: %w", err)
		}
	}

	o := Default()
	if so.Filepath != "" {
		o.Filepath = so.Filepath
	}
	if so.StartLine != 0 {
		o.StartLine = so.StartLine
	}
	o.StartOffset = so.StartOffset
	o.EncodingHint = so.EncodingHint
	o.FrozenStringLiteral = so.FrozenStringLiteral
	o.CommandLineFlags = so.CommandLineFlags
	if so.Version != "" {
		o.Version = so.Version
	}
	o.OuterScopes = so.OuterScopes

	if _, ok := NormalizeVersion(o.Version); !ok {
		return Options{}, fmt.Errorf("config: invalid version %q", o.Version)
	}
	return o, nil
}

// NormalizeVersion maps the spec's informal `version` input ("latest" or
// "cruby-3.3.0") to a `golang.org/x/mod/semver`-comparable string
// ("v99.99.99" / "v3.3.0"). The empty string is treated as "latest", and a
// bare semver ("3.3.0" or "v3.3.0") is accepted as well. The second result
// is false for any other string.
func NormalizeVersion(v string) (string, bool) {
	if v == "" || v == "latest" {
		return "v99.99.99", true
	}
	const prefix = "cruby-"
	if len(v) > len(prefix) && v[:len(prefix)] == prefix {
		rest := v[len(prefix):]
		sv := "v" + rest
		if semver.IsValid(sv) {
			return sv, true
		}
	}
	if v[0] != 'v' {
		if semver.IsValid("v" + v) {
			return "v" + v, true
		}
	} else if semver.IsValid(v) {
		return v, true
	}
	return "", false
}

// SyntaxAvailable reports whether a version-gated feature introduced at
// introducedAt (a semver string like "v3.4.0") is available under the
// effective parse version (already normalized via NormalizeVersion).
func SyntaxAvailable(effectiveVersion, introducedAt string) bool {
	return semver.Compare(effectiveVersion, introducedAt) >= 0
}
