package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// Load reads a profile JSON file, validates it against the profile schema,
// and returns the normalized Profile.
func Load(path string) (Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}
	return Parse(raw)
}

// Parse validates and decodes raw profile JSON.
func Parse(raw []byte) (Profile, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Profile{}, fmt.Errorf("parse profile: invalid JSON: %w", err)
	}

	sch, err := schema()
	if err != nil {
		return Profile{}, err
	}
	if err := sch.Validate(parsed); err != nil {
		return Profile{}, fmt.Errorf("profile schema validation: %w", err)
	}

	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	if p.SubjectPreferences == nil {
		p.SubjectPreferences = map[string]float64{}
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// schema compiles the profile schema once and caches it.
func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a parsed JSON value, not Go maps with
		// arbitrary types. Round-trip through encoding/json.
		defBytes, err := json.Marshal(profileSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal profile schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse profile schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://learntrace-profile.json"
		if err := c.AddResource(url, defParsed); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}
