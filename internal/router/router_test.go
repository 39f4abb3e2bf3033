package router

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/domain"
	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/llm"
)

func TestMapLabelTotality(t *testing.T) {
	tests := []struct {
		label    string
		expected domain.Key
	}{
		{"VISITOR", domain.KeyVisitor},
		{"HIERARCHY", domain.KeyHierarchy},
		{"BENEFICIARY", domain.KeyBeneficiary},
		{"visitor", domain.KeyVisitor},
		{"  Beneficiary  ", domain.KeyBeneficiary},
		{"The answer is HIERARCHY.", domain.KeyHierarchy},
		{"I think this is a VISITOR question", domain.KeyVisitor},

		// Priority order when multiple labels appear.
		{"VISITOR or HIERARCHY", domain.KeyVisitor},
		{"HIERARCHY, maybe BENEFICIARY", domain.KeyHierarchy},

		// Garbage always lands somewhere.
		{"", domain.KeyVisitor},
		{"UNKNOWN", domain.KeyVisitor},
		{"42", domain.KeyVisitor},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapLabel(tt.label))
		})
	}
}

func TestIsGeneral(t *testing.T) {
	r := New(llm.NewScripted("GENERAL"))

	general, err := r.IsGeneral(context.Background(), "hello, who are you?")
	require.NoError(t, err)
	assert.True(t, general)

	r = New(llm.NewScripted("DATA"))

	general, err = r.IsGeneral(context.Background(), "how many visitors came today?")
	require.NoError(t, err)
	assert.False(t, general)

	// Anything without the GENERAL label goes down the data path.
	r = New(llm.NewScripted("no idea"))

	general, err = r.IsGeneral(context.Background(), "???")
	require.NoError(t, err)
	assert.False(t, general)
}

func TestSelectDomain(t *testing.T) {
	r := New(llm.NewScripted("BENEFICIARY"))

	key, err := r.SelectDomain(context.Background(), "how many Ayushman Card beneficiaries?")
	require.NoError(t, err)
	assert.Equal(t, domain.KeyBeneficiary, key)
}

func TestAnswerGeneral(t *testing.T) {
	r := New(llm.NewScripted("Hello! I can help you explore constituency data."))

	answer, err := r.AnswerGeneral(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "Hello! I can help you explore constituency data.", answer)
}

func TestIsFollowUp(t *testing.T) {
	followups := []string{
		"what about yesterday?",
		"and for Udhna?",
		"same for beneficiaries",
		"also show the wards",
		"give me the count",
		"total for this month",
		"then what happened?",
		"how many for that village?",
	}

	for _, q := range followups {
		assert.True(t, IsFollowUp(q), "expected follow-up: %q", q)
	}

	standalone := []string{
		"list visitors from Udhna",
		"who is the MP?",
		"show me beneficiary schemes",
	}

	for _, q := range standalone {
		assert.False(t, IsFollowUp(q), "expected standalone: %q", q)
	}
}

func TestRewriteFollowUp(t *testing.T) {
	r := New(llm.NewScripted("How many visitors came from Udhna yesterday?"))

	rewritten, err := r.RewriteFollowUp(context.Background(),
		"How many visitors came from Udhna today?", "what about yesterday?")
	require.NoError(t, err)
	assert.Equal(t, "How many visitors came from Udhna yesterday?", rewritten)
}

func TestRewriteFollowUpWithoutPrevious(t *testing.T) {
	scripted := llm.NewScripted()
	r := New(scripted)

	rewritten, err := r.RewriteFollowUp(context.Background(), "", "what about yesterday?")
	require.NoError(t, err)
	assert.Equal(t, "what about yesterday?", rewritten)

	// No completion call was made.
	assert.Zero(t, scripted.CallCount())
}

func TestRewriteFollowUpEmptyModelOutput(t *testing.T) {
	r := New(llm.NewScripted("   "))

	rewritten, err := r.RewriteFollowUp(context.Background(), "previous question", "and now?")
	require.NoError(t, err)
	assert.Equal(t, "and now?", rewritten)
}
