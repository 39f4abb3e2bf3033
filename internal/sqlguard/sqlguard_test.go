package sqlguard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/domain"
	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/errors"
)

func visitorValidator(t *testing.T) *Validator {
	t.Helper()

	desc, ok := domain.ByKey(domain.KeyVisitor)
	require.True(t, ok)

	return New(desc)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bare statement",
			input:    "SELECT id FROM visitor_details",
			expected: "SELECT id FROM visitor_details",
		},
		{
			name:     "trailing semicolon and whitespace",
			input:    "  SELECT id FROM visitor_details;  \n",
			expected: "SELECT id FROM visitor_details",
		},
		{
			name:     "sql code fence",
			input:    "```sql\nSELECT id FROM visitor_details;\n```",
			expected: "SELECT id FROM visitor_details",
		},
		{
			name:     "plain code fence",
			input:    "```\nSELECT id FROM visitor_details\n```",
			expected: "SELECT id FROM visitor_details",
		},
		{
			name:     "fence with prose around it",
			input:    "Here is the query:\n```sql\nSELECT id FROM visitor_details;\n```\nLet me know!",
			expected: "SELECT id FROM visitor_details",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestValidateAcceptsSafeQueries(t *testing.T) {
	v := visitorValidator(t)

	queries := []string{
		"SELECT COUNT(*) FROM visitor_details",
		"SELECT COUNT(DISTINCT vis_contact_no) FROM visitor_details",
		"SELECT reason_category, COUNT(*) AS total FROM visitor_details GROUP BY reason_category ORDER BY total DESC",
		"SELECT vis_name, vis_address FROM visitor_details WHERE LOWER(vis_address) LIKE '%udhna%' LIMIT 10",
		"SELECT booth_name, COUNT(*) AS visits FROM visitor_details GROUP BY booth_name ORDER BY visits DESC LIMIT 5",
		"```sql\nSELECT COUNT(*) FROM visitor_details;\n```",
	}

	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			normalized, err := v.Validate(q)
			require.NoError(t, err)
			assert.NotEmpty(t, normalized)
			assert.NotContains(t, normalized, "```")
		})
	}
}

func TestValidateRejectsMutations(t *testing.T) {
	v := visitorValidator(t)

	queries := []string{
		"DELETE FROM visitor_details",
		"DELETE FROM visitor_details WHERE id = 1",
		"INSERT INTO visitor_details (vis_name) VALUES ('x')",
		"UPDATE visitor_details SET vis_name = 'x'",
		"DROP TABLE visitor_details",
	}

	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			_, err := v.Validate(q)
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.ErrTypeUnsafeSQL))
		})
	}
}

func TestValidateRejectsStackedStatements(t *testing.T) {
	v := visitorValidator(t)

	_, err := v.Validate("SELECT id FROM visitor_details; DROP TABLE visitor_details")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeUnsafeSQL))
}

func TestValidateRejectsUnknownTable(t *testing.T) {
	v := visitorValidator(t)

	_, err := v.Validate("SELECT name FROM sqlite_master")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeUnsafeSQL))
	assert.Contains(t, err.Error(), "sqlite_master")
}

func TestValidateRejectsCrossDomainTable(t *testing.T) {
	v := visitorValidator(t)

	_, err := v.Validate("SELECT assembly_name FROM constituency_hierarchy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "constituency_hierarchy")
}

func TestValidateRejectsUnknownColumn(t *testing.T) {
	v := visitorValidator(t)

	_, err := v.Validate("SELECT password FROM visitor_details")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeUnsafeSQL))
	assert.Contains(t, err.Error(), "password")
}

func TestValidateRejectsEmptyAndGarbage(t *testing.T) {
	v := visitorValidator(t)

	for _, q := range []string{"", "   ", "not sql at all ((("} {
		_, err := v.Validate(q)
		assert.Error(t, err, "input %q", q)
	}
}

func TestValidateAcceptsSelectAliasInOrderBy(t *testing.T) {
	desc, ok := domain.ByKey(domain.KeyBeneficiary)
	require.True(t, ok)
	v := New(desc)

	normalized, err := v.Validate(
		"SELECT beneficiary_item_name, COUNT(*) AS beneficiaries FROM beneficiary_master GROUP BY beneficiary_item_name ORDER BY beneficiaries DESC",
	)
	require.NoError(t, err)
	assert.Contains(t, normalized, "beneficiaries")
}

func TestScanValue(t *testing.T) {
	assert.NoError(t, ScanValue(""))
	assert.NoError(t, ScanValue("Udhna"))
	assert.NoError(t, ScanValue("163-Limbayat"))

	err := ScanValue("' OR 1=1 --")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeUnsafeSQL))
}

func TestScanFilters(t *testing.T) {
	assert.NoError(t, ScanFilters(nil))
	assert.NoError(t, ScanFilters(map[string]any{
		"vis_address": "Udhna",
		"limit":       float64(5),
		"schemes":     []any{"PM Awas Yojana", "Ayushman Card"},
	}))

	err := ScanFilters(map[string]any{"vis_address": "x'; DROP TABLE visitor_details; --"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vis_address")
}
