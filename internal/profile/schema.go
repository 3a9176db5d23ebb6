package profile

// weekdayEnum lists the accepted weekday names in profile documents.
var weekdayEnum = []any{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// DocumentSchema defines the JSON schema a profile document must satisfy
// before it is decoded. Range errors (difficulty outside 1-5, negative
// hours, malformed clock times) are caught here rather than at runtime.
var DocumentSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":   map[string]any{"type": "string"},
		"name": map[string]any{"type": "string", "minLength": 1},
		"subjects": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":              map[string]any{"type": "string"},
					"name":            map[string]any{"type": "string", "minLength": 1},
					"estimated_hours": map[string]any{"type": "number", "minimum": 0},
					"difficulty":      map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
					"topics": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":                map[string]any{"type": "string"},
								"title":             map[string]any{"type": "string", "minLength": 1},
								"estimated_minutes": map[string]any{"type": "integer", "minimum": 0},
								"completed_minutes": map[string]any{"type": "integer", "minimum": 0},
							},
							"required": []any{"title", "estimated_minutes"},
						},
					},
					"exam_date": map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
					"priority":  map[string]any{"type": "number", "minimum": 0},
				},
				"required": []any{"name", "estimated_hours", "difficulty"},
			},
		},
		"study_days": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string", "enum": weekdayEnum},
		},
		"daily_hours": map[string]any{"type": "number", "minimum": 0},
		"hour_overrides": map[string]any{
			"type":                 "object",
			"propertyNames":        map[string]any{"enum": weekdayEnum},
			"additionalProperties": map[string]any{"type": "number", "minimum": 0},
		},
		"window_start":          map[string]any{"type": "string", "pattern": `^([01]\d|2[0-3]):[0-5]\d$`},
		"window_end":            map[string]any{"type": "string", "pattern": `^([01]\d|2[0-3]):[0-5]\d$`},
		"focus_minutes":         map[string]any{"type": "integer", "minimum": 1},
		"break_minutes":         map[string]any{"type": "integer", "minimum": 0},
		"revision_every_days":   map[string]any{"type": "integer", "minimum": 1},
		"revision_slot_minutes": map[string]any{"type": "integer", "minimum": 0},
		"span_days":             map[string]any{"type": "integer", "minimum": 1},
		"rest_buffer_minutes":   map[string]any{"type": "integer", "minimum": 0},
		"weights": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"exam":       map[string]any{"type": "number"},
				"difficulty": map[string]any{"type": "number"},
				"remaining":  map[string]any{"type": "number"},
				"topics":     map[string]any{"type": "number"},
			},
		},
		"start_date": map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
		"notes":      map[string]any{"type": "string"},
	},
	"required": []any{"name", "subjects", "window_start", "window_end", "focus_minutes"},
}
