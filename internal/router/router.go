// Package router decides how each incoming question is handled: answered
// directly as general conversation, or dispatched to one of the three data
// domains. Classification uses the model, but the mapping from model output
// to a decision is deterministic.
package router

import (
	"context"
	"fmt"
	"strings"

	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/domain"
	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/llm"
)

const intentPrompt = `Classify the question.

Return ONLY one word:

GENERAL  - greetings, help, explanation, who are you, what can you do,
           definitions, casual talk, non-database questions

DATA     - anything asking for numbers, counts, lists, records,
           visitors, booths, wards, assemblies, beneficiaries

Question: "%s"`

const generalPrompt = `You are a helpful assistant for a constituency data system.

Answer clearly and briefly.

User question:
%s`

const domainPrompt = `Analyze this question and return ONLY one word: VISITOR, HIERARCHY, or BENEFICIARY

If the user asks which assembly you were created for or what assembly data you have, return BENEFICIARY. (critical)
If the question mentions booth counts, wards, shakti kendra counts, assembly counts, or any of these names:
1. RAKESH DESAI
2. HARSHBHAI SANGHVI
3. R.C. PATEL
4. NARESHBHAI MANGABHAI PATEL
5. SANDIP DESAI
6. MANUBHAI PATEL
7. Sangitaben Rajendrakumar Patil
then return HIERARCHY.
If the user asks under which MP these assemblies fall, or whose MP the booths, wards, or shakti kendras belong to, return HIERARCHY. (critical)
If the question mentions reasons or reason categories, return VISITOR.
If the user asks about incharge names, or how many booths, wards, or shakti kendras are assigned to an incharge, return HIERARCHY.
If the user asks about schemes and incharges in one question, return BENEFICIARY.

Question: "%s"

Rules:
- If the question is a greeting, return VISITOR
- VISITOR: questions about visitors, visits, work status, visitor details
- HIERARCHY: questions about booths, wards, constituencies, assemblies, administrative structure
- BENEFICIARY: questions about beneficiaries, schemes, benefits, items, categories, beneficiary details

Return ONLY: VISITOR, HIERARCHY, or BENEFICIARY`

const rewritePrompt = `You are rewriting a follow-up question into a full standalone question.

Previous question:
%s

Follow-up question:
%s

Return a complete rewritten question.
Only return the rewritten sentence.`

// followupMarkers are substrings that mark a question as depending on the
// previous turn.
var followupMarkers = []string{
	"how many",
	"what about",
	"same",
	"and",
	"also",
	"count",
	"total",
	"then",
	"for this",
	"for that",
}

// Router classifies questions and selects domains
type Router struct {
	completer llm.Completer
}

// New creates a router backed by the given completer
func New(completer llm.Completer) *Router {
	return &Router{completer: completer}
}

// IsGeneral reports whether the question is conversational and needs no
// database access. Classification failures fall through to the data path.
func (r *Router) IsGeneral(ctx context.Context, question string) (bool, error) {
	response, err := r.completer.Complete(ctx, []llm.Message{
		llm.User(fmt.Sprintf(intentPrompt, question)),
	})
	if err != nil {
		return false, err
	}

	return strings.Contains(strings.ToUpper(response), "GENERAL"), nil
}

// AnswerGeneral answers a conversational question directly, without SQL
func (r *Router) AnswerGeneral(ctx context.Context, question string) (string, error) {
	answer, err := r.completer.Complete(ctx, []llm.Message{
		llm.User(fmt.Sprintf(generalPrompt, question)),
	})
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(answer), nil
}

// SelectDomain picks the domain for a data question. Any model output maps
// to a valid domain: labels are matched by substring in priority order and
// anything unrecognized falls back to the visitor domain.
func (r *Router) SelectDomain(ctx context.Context, question string) (domain.Key, error) {
	response, err := r.completer.Complete(ctx, []llm.Message{
		llm.User(fmt.Sprintf(domainPrompt, question)),
	})
	if err != nil {
		return "", err
	}

	return MapLabel(response), nil
}

// MapLabel maps raw classifier output to a domain key
func MapLabel(label string) domain.Key {
	upper := strings.ToUpper(strings.TrimSpace(label))

	switch {
	case strings.Contains(upper, "VISITOR"):
		return domain.KeyVisitor
	case strings.Contains(upper, "HIERARCHY"):
		return domain.KeyHierarchy
	case strings.Contains(upper, "BENEFICIARY"):
		return domain.KeyBeneficiary
	default:
		return domain.KeyVisitor
	}
}

// IsFollowUp reports whether the question depends on the previous turn
func IsFollowUp(question string) bool {
	q := strings.ToLower(question)

	for _, marker := range followupMarkers {
		if strings.Contains(q, marker) {
			return true
		}
	}

	return false
}

// RewriteFollowUp expands a follow-up into a standalone question using the
// previous question as context. With no previous question it is returned
// unchanged.
func (r *Router) RewriteFollowUp(ctx context.Context, previous, question string) (string, error) {
	if strings.TrimSpace(previous) == "" {
		return question, nil
	}

	rewritten, err := r.completer.Complete(ctx, []llm.Message{
		llm.User(fmt.Sprintf(rewritePrompt, previous, question)),
	})
	if err != nil {
		return "", err
	}

	rewritten = strings.TrimSpace(rewritten)
	if rewritten == "" {
		return question, nil
	}

	return rewritten, nil
}
