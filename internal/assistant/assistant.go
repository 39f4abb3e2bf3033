// Package assistant ties the router, the domain pipelines, and conversation
// history together into a single ask/answer surface used by the CLI.
package assistant

import (
	"context"
	"strings"
	"sync"

	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/domain"
	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/errors"
	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/llm"
	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/logging"
	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/pipeline"
	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/router"
	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/storage"
)

const defaultHistoryWindow = 8

// Response is the outcome of one conversational turn
type Response struct {
	Answer  string
	Domain  domain.Key
	SQL     string
	Columns []string
	Rows    [][]any

	// General marks answers produced without touching the database.
	General bool

	// Clarification marks answers that ask the user for more detail.
	Clarification bool
}

// Assistant handles conversational turns end to end
type Assistant struct {
	store     *storage.Store
	router    *router.Router
	pipelines map[domain.Key]*pipeline.Pipeline

	mu           sync.Mutex
	lastQuestion string
}

// New creates an assistant. All model calls, including routing, carry the
// recent conversation history so follow-up context is available everywhere.
func New(completer llm.Completer, store *storage.Store, historyWindow int) *Assistant {
	if historyWindow <= 0 {
		historyWindow = defaultHistoryWindow
	}

	hc := &historyCompleter{
		base:   completer,
		store:  store,
		window: historyWindow,
	}

	pipelines := make(map[domain.Key]*pipeline.Pipeline)
	for _, desc := range domain.All() {
		pipelines[desc.Key] = pipeline.New(desc, hc, store)
	}

	return &Assistant{
		store:     store,
		router:    router.New(hc),
		pipelines: pipelines,
	}
}

// Ask processes one user question and returns the answer. Pipeline failures
// never reach the user as errors; they collapse to a polite fallback answer
// while the cause is logged.
func (a *Assistant) Ask(ctx context.Context, question string) (*Response, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, errors.New(errors.ErrTypeValidation, "question is empty")
	}

	a.saveTurn(ctx, llm.RoleUser, question)

	question = a.resolveFollowUp(ctx, question)

	general, err := a.router.IsGeneral(ctx, question)
	if err != nil {
		logging.WithError(err).Warn("intent classification failed, treating question as data request")

		general = false
	}

	if general {
		return a.answerGeneral(ctx, question)
	}

	return a.answerData(ctx, question)
}

// LastQuestion returns the most recent successfully answered data question
func (a *Assistant) LastQuestion() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.lastQuestion
}

func (a *Assistant) resolveFollowUp(ctx context.Context, question string) string {
	a.mu.Lock()
	previous := a.lastQuestion
	a.mu.Unlock()

	if previous == "" || !router.IsFollowUp(question) {
		return question
	}

	rewritten, err := a.router.RewriteFollowUp(ctx, previous, question)
	if err != nil {
		logging.WithError(err).Warn("follow-up rewrite failed, using question as asked")

		return question
	}

	if rewritten != question {
		logging.WithField("rewritten", rewritten).Debug("expanded follow-up question")
	}

	return rewritten
}

func (a *Assistant) answerGeneral(ctx context.Context, question string) (*Response, error) {
	answer, err := a.router.AnswerGeneral(ctx, question)
	if err != nil {
		logging.WithError(err).Error("general answer failed")

		answer = pipeline.FallbackAnswer
	}

	a.saveTurn(ctx, llm.RoleAssistant, answer)

	return &Response{Answer: answer, General: true}, nil
}

func (a *Assistant) answerData(ctx context.Context, question string) (*Response, error) {
	key, err := a.router.SelectDomain(ctx, question)
	if err != nil {
		logging.WithError(err).Error("domain selection failed")

		answer := pipeline.FallbackAnswer
		a.saveTurn(ctx, llm.RoleAssistant, answer)

		return &Response{Answer: answer}, nil
	}

	p, ok := a.pipelines[key]
	if !ok {
		return nil, errors.Newf(errors.ErrTypeRouting, "no pipeline for domain %q", key)
	}

	result, err := p.Run(ctx, question)
	if err != nil {
		logging.WithFields(map[string]interface{}{
			"domain": string(key),
			"error":  err.Error(),
		}).Error("pipeline run failed")

		answer := pipeline.FallbackAnswer
		a.saveTurn(ctx, llm.RoleAssistant, answer)

		return &Response{Answer: answer, Domain: key}, nil
	}

	if !result.Clarification {
		a.mu.Lock()
		a.lastQuestion = question
		a.mu.Unlock()
	}

	a.saveTurn(ctx, llm.RoleAssistant, result.Answer)

	return &Response{
		Answer:        result.Answer,
		Domain:        key,
		SQL:           result.SQL,
		Columns:       result.Columns,
		Rows:          result.Rows,
		Clarification: result.Clarification,
	}, nil
}

// saveTurn persists a message; history is best effort and never fails a turn
func (a *Assistant) saveTurn(ctx context.Context, role, message string) {
	if err := a.store.SaveMessage(ctx, role, message); err != nil {
		logging.WithError(err).Warn("failed to save conversation message")
	}
}

// historyCompleter prepends recent conversation turns to every completion
// request so each stage sees the same context.
type historyCompleter struct {
	base   llm.Completer
	store  *storage.Store
	window int
}

func (h *historyCompleter) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	turns, err := h.store.RecentMessages(ctx, h.window)
	if err != nil {
		logging.WithError(err).Warn("failed to load conversation history")

		return h.base.Complete(ctx, messages)
	}

	full := make([]llm.Message, 0, len(turns)+len(messages))
	for _, t := range turns {
		full = append(full, llm.Message{Role: t.Role, Content: t.Message})
	}

	full = append(full, messages...)

	return h.base.Complete(ctx, full)
}
