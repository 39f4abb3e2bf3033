package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByKey(t *testing.T) {
	tests := []struct {
		key   Key
		table string
	}{
		{KeyVisitor, "visitor_details"},
		{KeyHierarchy, "constituency_hierarchy"},
		{KeyBeneficiary, "beneficiary_master"},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			d, ok := ByKey(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.table, d.Table)
			assert.True(t, d.AllowsTable(tt.table))
			assert.False(t, d.AllowsTable("sqlite_master"))
		})
	}

	_, ok := ByKey(Key("unknown"))
	assert.False(t, ok)
}

func TestAllReturnsThreeDomains(t *testing.T) {
	all := All()
	require.Len(t, all, 3)

	seen := map[Key]bool{}
	for _, d := range all {
		seen[d.Key] = true
		assert.NotEmpty(t, d.SchemaText)
		assert.NotEmpty(t, d.PlannerPrompt)
		assert.NotEmpty(t, d.SynthesizerPrompt)
		assert.NotEmpty(t, d.ComposerRules)
		assert.NotEmpty(t, d.Columns())
	}

	assert.True(t, seen[KeyVisitor])
	assert.True(t, seen[KeyHierarchy])
	assert.True(t, seen[KeyBeneficiary])
}

func TestVisitorColumnAllowlist(t *testing.T) {
	d, _ := ByKey(KeyVisitor)

	for _, col := range []string{"vis_contact_no", "reason_category", "booth_name", "assembly_name"} {
		assert.True(t, d.AllowsColumn(col), col)
	}

	assert.False(t, d.AllowsColumn("password"))
	assert.False(t, d.AllowsColumn("benf_name"))
}

func TestHierarchyColumnAllowlist(t *testing.T) {
	d, _ := ByKey(KeyHierarchy)

	for _, col := range []string{"assembly_name", "assembly_incharge", "ward_name", "booth_name_guj", "mandal_mas_id"} {
		assert.True(t, d.AllowsColumn(col), col)
	}

	assert.False(t, d.AllowsColumn("vis_name"))
}

func TestBeneficiaryColumnAllowlist(t *testing.T) {
	d, _ := ByKey(KeyBeneficiary)

	for _, col := range []string{"beneficiary_item_name", "benf_name", "aadhar_no", "benficiary_category_name"} {
		assert.True(t, d.AllowsColumn(col), col)
	}

	assert.False(t, d.AllowsColumn("vis_contact_no"))
}

func TestPlannerPromptsCarryDomainRules(t *testing.T) {
	v, _ := ByKey(KeyVisitor)
	assert.Contains(t, v.PlannerPrompt, "vis_contact_no")
	assert.Contains(t, v.PlannerPrompt, "reason_category")

	h, _ := ByKey(KeyHierarchy)
	assert.Contains(t, h.PlannerPrompt, "163-Limbayat")
	assert.Contains(t, h.PlannerPrompt, "assembly_incharge")
	assert.Contains(t, h.PlannerPrompt, "Sangitaben Rajendrakumar Patil")

	b, _ := ByKey(KeyBeneficiary)
	assert.Contains(t, b.PlannerPrompt, "beneficiary_item_name")
	assert.Contains(t, b.PlannerPrompt, "AYUSHMAN BHARAT")
	assert.Contains(t, b.PlannerPrompt, "163-Limbayat")
}

func TestSynthesizerPromptsUseSQLiteDialect(t *testing.T) {
	for _, d := range All() {
		assert.Contains(t, d.SynthesizerPrompt, "SQLite", string(d.Key))
		assert.Contains(t, strings.ToUpper(d.SynthesizerPrompt), "NO SELECT *", string(d.Key))
	}
}

func TestResolveAssembly(t *testing.T) {
	tests := []struct {
		ref      string
		expected string
		ok       bool
	}{
		{"limbayat", "163-Limbayat", true},
		{"Limb", "163-Limbayat", true},
		{"163", "163-Limbayat", true},
		{"163-Limbayat", "163-Limbayat", true},
		{"લિંબાયત", "163-Limbayat", true},
		{"navsari", "175-Navsari", true},
		{"175", "175-Navsari", true},
		{"majra", "165-Majura", true},
		{"udana", "164-Udhna", true},
		{"gandhvi", "176-Gandevi", true},
		{"choriyasi", "168-Choryasi", true},
		{"jalapur", "174-Jalalpur", true},
		{"sachin", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, ok := ResolveAssembly(tt.ref)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveAssemblyDeterministic(t *testing.T) {
	first, ok := ResolveAssembly("limbayat")
	require.True(t, ok)

	for i := 0; i < 10; i++ {
		got, ok := ResolveAssembly("LIMBAYAT")
		require.True(t, ok)
		assert.Equal(t, first, got)
	}
}

func TestResolveIncharge(t *testing.T) {
	tests := []struct {
		ref      string
		expected string
		ok       bool
	}{
		{"desai", "RAKESH DESAI", true},
		{"desai sir", "RAKESH DESAI", true},
		{"sandipbhai", "SANDIP DESAI", true},
		{"patil madam", "Sangitaben Rajendrakumar Patil", true},
		{"rajendrakumar", "Sangitaben Rajendrakumar Patil", true},
		{"cr patel", "R.C. PATEL", true},
		{"R.C. PATEL", "R.C. PATEL", true},
		{"sanghvi", "HARSHBHAI SANGHVI", true},
		{"manu patel", "MANUBHAI PATEL", true},
		{"mangabhai patel", "NARESHBHAI MANGABHAI PATEL", true},
		{"somebody else", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, ok := ResolveIncharge(tt.ref)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveScheme(t *testing.T) {
	tests := []struct {
		ref      string
		expected string
		ok       bool
	}{
		{"ayushman", "AYUSHMAN BHARAT", true},
		{"ayushman card", "AYUSHMAN BHARAT", true},
		{"pmjay", "PM-JAY (Pradhan Mantri Jan Arogya Yojana)", true},
		{"lpg", "UJJWALA YOJANA", true},
		{"old age", "SENIOR CITIZEN", true},
		{"disabled", "DIVYANG", true},
		{"cng auto", "CNG RIKSHA", true},
		{"PMAY", "PMAY", true},
		{"TIRANGA", "TIRANGA", true},
		{"unknown scheme", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, ok := ResolveScheme(tt.ref)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCanonicalizeFilters(t *testing.T) {
	h, _ := ByKey(KeyHierarchy)

	filters := map[string]any{
		"assembly_name":     "limb",
		"assembly_incharge": "desai sir",
		"ward_name":         "Ward 12",
	}

	h.CanonicalizeFilters(filters)

	assert.Equal(t, "163-Limbayat", filters["assembly_name"])
	assert.Equal(t, "RAKESH DESAI", filters["assembly_incharge"])
	assert.Equal(t, "Ward 12", filters["ward_name"])

	b, _ := ByKey(KeyBeneficiary)

	filters = map[string]any{
		"beneficiary_item_name": "ayushman card",
		"benf_village":          "Udhna",
	}

	b.CanonicalizeFilters(filters)

	assert.Equal(t, "AYUSHMAN BHARAT", filters["beneficiary_item_name"])
	assert.Equal(t, "Udhna", filters["benf_village"])

	// Unresolvable values pass through untouched.
	filters = map[string]any{"assembly_name": "atlantis"}
	h.CanonicalizeFilters(filters)
	assert.Equal(t, "atlantis", filters["assembly_name"])

	// The visitor domain has no locked value sets.
	v, _ := ByKey(KeyVisitor)
	filters = map[string]any{"vis_village": "limb"}
	v.CanonicalizeFilters(filters)
	assert.Equal(t, "limb", filters["vis_village"])
}

func TestFixedAnswers(t *testing.T) {
	assert.Equal(t, "C.R PATIL", MPName)
	assert.Equal(t, "163-Limbayat", CreatedForAssembly)
	assert.True(t, IsCanonicalAssembly(CreatedForAssembly))
	assert.False(t, IsCanonicalAssembly("999-Nowhere"))
}
