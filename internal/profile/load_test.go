package profile

import (
	"strings"
	"testing"
)

func validProfileJSON() []byte {
	return []byte(`{
		"learner_id": "demo-maya",
		"time_range_months": 6,
		"learning_velocity": "fast",
		"subject_preferences": {"math": 0.9, "science": 0.4},
		"difficulty_preference": "challenging",
		"session_frequency": "high",
		"consistency_level": "consistent",
		"help_seeking_behavior": "independent"
	}`)
}

func TestParseValidProfile(t *testing.T) {
	p, err := Parse(validProfileJSON())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.LearnerID != "demo-maya" {
		t.Errorf("learner = %q", p.LearnerID)
	}
	if p.LearningVelocity != VelocityFast {
		t.Errorf("velocity = %q", p.LearningVelocity)
	}
	if got := p.SubjectPreferences["math"]; got != 0.9 {
		t.Errorf("math preference = %v, want 0.9", got)
	}
}

func TestParseRejectsBadEnum(t *testing.T) {
	raw := strings.Replace(string(validProfileJSON()), `"fast"`, `"warp"`, 1)
	_, err := Parse([]byte(raw))
	if err == nil {
		t.Fatal("expected schema validation error for bad velocity")
	}
}

func TestParseRejectsUnknownField(t *testing.T) {
	raw := strings.Replace(string(validProfileJSON()), `"learner_id"`, `"favorite_color": "blue", "learner_id"`, 1)
	_, err := Parse([]byte(raw))
	if err == nil {
		t.Fatal("expected schema validation error for unknown field")
	}
}

func TestParseRejectsOutOfRangePreference(t *testing.T) {
	raw := strings.Replace(string(validProfileJSON()), "0.9", "1.7", 1)
	_, err := Parse([]byte(raw))
	if err == nil {
		t.Fatal("expected schema validation error for preference > 1")
	}
}

func TestParseRejectsMissingRequired(t *testing.T) {
	_, err := Parse([]byte(`{"learner_id": "demo-maya"}`))
	if err == nil {
		t.Fatal("expected schema validation error for missing fields")
	}
}

func TestValidateClampsPreferences(t *testing.T) {
	p := Default("demo-liam")
	p.SubjectPreferences = map[string]float64{"math": -0.5, "art": 2.0}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if p.SubjectPreferences["math"] != 0 {
		t.Errorf("math = %v, want 0", p.SubjectPreferences["math"])
	}
	if p.SubjectPreferences["art"] != 1 {
		t.Errorf("art = %v, want 1", p.SubjectPreferences["art"])
	}
}

func TestEnumLookups(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"slow multiplier", VelocitySlow.Multiplier(), 0.7},
		{"average multiplier", VelocityAverage.Multiplier(), 0.8},
		{"fast multiplier", VelocityFast.Multiplier(), 0.9},
		{"independent help", HelpIndependent.Probability(), 0.1},
		{"moderate help", HelpModerate.Probability(), 0.3},
		{"frequent help", HelpFrequent.Probability(), 0.6},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	if got := FrequencyLow.SessionsPerWeek(); got != 2 {
		t.Errorf("low sessions = %d, want 2", got)
	}
	if got := FrequencyHigh.SessionsPerWeek(); got != 6 {
		t.Errorf("high sessions = %d, want 6", got)
	}
}
