package profile

// profileSchema is the JSON Schema for profile files loaded by the CLI.
// Enum values mirror the typed constants in profile.go.
var profileSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"learner_id": map[string]any{
			"type":        "string",
			"minLength":   1,
			"description": "Catalog id of the learner to generate history for",
		},
		"time_range_months": map[string]any{
			"type":        "integer",
			"minimum":     1,
			"maximum":     24,
			"description": "Length of the historical window in months",
		},
		"learning_velocity": map[string]any{
			"type": "string",
			"enum": []any{"slow", "average", "fast"},
		},
		"subject_preferences": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type":    "number",
				"minimum": 0,
				"maximum": 1,
			},
			"description": "Per-subject preference score, keyed by subject id",
		},
		"difficulty_preference": map[string]any{
			"type": "string",
			"enum": []any{"conservative", "balanced", "challenging"},
		},
		"session_frequency": map[string]any{
			"type": "string",
			"enum": []any{"low", "medium", "high"},
		},
		"consistency_level": map[string]any{
			"type": "string",
			"enum": []any{"inconsistent", "moderate", "consistent"},
		},
		"help_seeking_behavior": map[string]any{
			"type": "string",
			"enum": []any{"independent", "moderate", "frequent"},
		},
	},
	"required": []any{
		"learner_id", "time_range_months", "learning_velocity",
		"difficulty_preference", "session_frequency",
		"consistency_level", "help_seeking_behavior",
	},
	"additionalProperties": false,
}
