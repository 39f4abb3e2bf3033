// Package pipeline turns a natural-language question into an answer by
// chaining planning, SQL synthesis, validation, execution, and answer
// composition for one domain.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/domain"
	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/errors"
	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/llm"
	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/logging"
	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/sqlguard"
	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/storage"
)

// FallbackAnswer is shown to the user when any stage fails. The real cause
// is logged, never surfaced.
const FallbackAnswer = "Sorry, I couldn't find that information with the available data. Could you rephrase your question and try again please."

const composerRowLimit = 50

// Pipeline answers questions for a single domain
type Pipeline struct {
	desc      *domain.Descriptor
	completer llm.Completer
	store     *storage.Store
	validator *sqlguard.Validator
}

// Result is a successful pipeline run
type Result struct {
	Answer   string
	SQL      string
	Columns  []string
	Rows     [][]any
	RowCount int

	// Clarification is true when the planner asked the user a question
	// instead of producing a query; SQL and rows are empty in that case.
	Clarification bool
}

// New creates a pipeline for one domain
func New(desc *domain.Descriptor, completer llm.Completer, store *storage.Store) *Pipeline {
	return &Pipeline{
		desc:      desc,
		completer: completer,
		store:     store,
		validator: sqlguard.New(desc),
	}
}

// Domain returns the key of the domain this pipeline serves
func (p *Pipeline) Domain() domain.Key {
	return p.desc.Key
}

// Run executes all stages for one question. Every returned error carries a
// type from the errors package so the caller can log the stage that failed.
func (p *Pipeline) Run(ctx context.Context, question string) (*Result, error) {
	log := logging.WithFields(map[string]interface{}{
		"run_id": uuid.New().String(),
		"domain": string(p.desc.Key),
	})

	log.WithField("question", question).Debug("pipeline run started")

	plan, err := p.GeneratePlan(ctx, question)
	if err != nil {
		return nil, err
	}

	if plan.Clarification != "" {
		log.Debug("planner requested clarification")

		return &Result{Answer: plan.Clarification, Clarification: true}, nil
	}

	sqlText, err := p.SynthesizeSQL(ctx, plan)
	if err != nil {
		return nil, err
	}

	validated, err := p.validator.Validate(sqlText)
	if err != nil {
		log.WithError(err).Warn("generated SQL rejected")
		return nil, err
	}

	log.WithField("sql", validated).Debug("executing validated SQL")

	resultSet, err := p.store.Query(ctx, validated)
	if err != nil {
		return nil, err
	}

	answer, err := p.ComposeAnswer(ctx, question, validated, resultSet)
	if err != nil {
		return nil, err
	}

	log.WithField("rows", resultSet.RowCount()).Debug("pipeline run finished")

	return &Result{
		Answer:   answer,
		SQL:      validated,
		Columns:  resultSet.Columns,
		Rows:     resultSet.Rows,
		RowCount: resultSet.RowCount(),
	}, nil
}

// GeneratePlan asks the model for a structured plan and parses it. Malformed
// output fails the run without a retry.
func (p *Pipeline) GeneratePlan(ctx context.Context, question string) (*Plan, error) {
	raw, err := p.completer.Complete(ctx, []llm.Message{
		llm.System(p.desc.PlannerPrompt),
		llm.User(question),
	})
	if err != nil {
		return nil, err
	}

	plan, err := ParsePlan(raw)
	if err != nil {
		return nil, err
	}

	if plan.Clarification != "" {
		return plan, nil
	}

	if plan.Table == "" {
		plan.Table = p.desc.Table
	}

	if !p.desc.AllowsTable(strings.ToLower(plan.Table)) {
		return nil, errors.Newf(errors.ErrTypeMalformedPlan, "plan targets table %q outside this domain", plan.Table)
	}

	if err := sqlguard.ScanFilters(plan.Filters); err != nil {
		return nil, err
	}

	p.desc.CanonicalizeFilters(plan.Filters)

	return plan, nil
}

// SynthesizeSQL asks the model to translate a plan into a single SQLite
// SELECT statement.
func (p *Pipeline) SynthesizeSQL(ctx context.Context, plan *Plan) (string, error) {
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrTypeInternal, "failed to encode plan")
	}

	raw, err := p.completer.Complete(ctx, []llm.Message{
		llm.System(p.desc.SynthesizerPrompt),
		llm.User(string(planJSON)),
	})
	if err != nil {
		return "", err
	}

	return raw, nil
}

// ComposeAnswer turns query results into a conversational answer
func (p *Pipeline) ComposeAnswer(ctx context.Context, question, sqlText string, rs *storage.ResultSet) (string, error) {
	prompt := composerInput(question, sqlText, rs)

	answer, err := p.completer.Complete(ctx, []llm.Message{
		llm.System(p.desc.ComposerRules),
		llm.User(prompt),
	})
	if err != nil {
		return "", err
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", errors.New(errors.ErrTypeUpstream, "empty answer from composer")
	}

	return answer, nil
}

func composerInput(question, sqlText string, rs *storage.ResultSet) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Question: %s\n", question)
	fmt.Fprintf(&b, "SQL executed: %s\n", sqlText)
	fmt.Fprintf(&b, "Columns: %s\n", strings.Join(rs.Columns, ", "))
	fmt.Fprintf(&b, "Total rows: %d\n", rs.RowCount())

	shown := rs.Rows
	if len(shown) > composerRowLimit {
		shown = shown[:composerRowLimit]
		fmt.Fprintf(&b, "Showing first %d rows:\n", composerRowLimit)
	} else {
		b.WriteString("Rows:\n")
	}

	for _, row := range shown {
		cells := make([]string, len(row))
		for i, v := range row {
			if v == nil {
				cells[i] = "NULL"
			} else {
				cells[i] = fmt.Sprintf("%v", v)
			}
		}

		b.WriteString(strings.Join(cells, " | "))
		b.WriteString("\n")
	}

	return b.String()
}
