package pipeline

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/errors"
)

// Plan is the structured query intent produced by the planning stage
type Plan struct {
	Table   string         `json:"table"`
	Filters map[string]any `json:"filters"`
	Metrics []string       `json:"metrics"`
	GroupBy []string       `json:"group_by"`
	OrderBy []string       `json:"order_by"`

	// Limit is nil when the planner did not ask for one, so re-marshalling
	// the plan for the synthesizer emits null rather than a literal 0.
	Limit *int `json:"limit"`

	// Clarification, when set, replaces the rest of the plan: the question
	// needs a follow-up from the user instead of a query.
	Clarification string `json:"clarification,omitempty"`
}

// UnmarshalJSON decodes a plan leniently. Models emit limit as a number, a
// numeric string, or null, and emit list fields as either a string or an
// array; all of those decode without error.
func (p *Plan) UnmarshalJSON(data []byte) error {
	var raw struct {
		Table         string          `json:"table"`
		Filters       map[string]any  `json:"filters"`
		Metrics       json.RawMessage `json:"metrics"`
		GroupBy       json.RawMessage `json:"group_by"`
		OrderBy       json.RawMessage `json:"order_by"`
		Limit         json.RawMessage `json:"limit"`
		Clarification string          `json:"clarification"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.Table = raw.Table
	p.Filters = raw.Filters
	p.Clarification = raw.Clarification

	var err error

	if p.Metrics, err = decodeStringList(raw.Metrics); err != nil {
		return err
	}

	if p.GroupBy, err = decodeStringList(raw.GroupBy); err != nil {
		return err
	}

	if p.OrderBy, err = decodeStringList(raw.OrderBy); err != nil {
		return err
	}

	p.Limit = decodeLimit(raw.Limit)

	return nil
}

func decodeStringList(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var single string
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, err
	}

	if strings.TrimSpace(single) == "" {
		return nil, nil
	}

	return []string{single}, nil
}

func decodeLimit(raw json.RawMessage) *int {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(raw, &num); err == nil {
		if n, err := num.Int64(); err == nil && n > 0 {
			limit := int(n)
			return &limit
		}

		return nil
	}

	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(str)); err == nil && n > 0 {
			return &n
		}
	}

	return nil
}

// ParsePlan extracts and decodes the plan JSON from raw model output
func ParsePlan(raw string) (*Plan, error) {
	jsonText := extractJSON(raw)
	if jsonText == "" {
		return nil, errors.Newf(errors.ErrTypeMalformedPlan, "no JSON object in planner output: %q", truncate(raw, 200))
	}

	var plan Plan
	if err := json.Unmarshal([]byte(jsonText), &plan); err != nil {
		return nil, errors.Wrapf(err, errors.ErrTypeMalformedPlan, "invalid plan JSON: %q", truncate(jsonText, 200))
	}

	return &plan, nil
}

// extractJSON pulls the outermost JSON object out of model output that may
// be wrapped in markdown fences or prose.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)

	if strings.Contains(raw, "```") {
		parts := strings.Split(raw, "```")
		for _, part := range parts {
			part = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(part), "json"))
			if strings.HasPrefix(part, "{") {
				raw = part
				break
			}
		}
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")

	if start < 0 || end <= start {
		return ""
	}

	return raw[start : end+1]
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n] + "..."
}
