// Package sqlguard validates generated SQL before execution. It is the only
// safety boundary between model output and the database: statements are
// parsed with a real SQL grammar and rejected unless they are a single
// read-only SELECT touching only allowlisted tables and columns.
package sqlguard

import (
	"strings"

	"github.com/xwb1989/sqlparser"

	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/domain"
	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/errors"
)

// Validator checks statements against one domain's table and column allowlist
type Validator struct {
	desc *domain.Descriptor

	columns map[string]struct{}
}

// New creates a validator scoped to the given domain descriptor
func New(desc *domain.Descriptor) *Validator {
	v := &Validator{
		desc:    desc,
		columns: make(map[string]struct{}),
	}
	for _, c := range desc.Columns() {
		v.columns[strings.ToLower(c)] = struct{}{}
	}

	return v
}

// Normalize strips markdown fences and trailing semicolons from model output
// and returns the bare statement text.
func Normalize(sql string) string {
	sql = strings.TrimSpace(sql)

	if strings.Contains(sql, "```sql") {
		parts := strings.SplitN(sql, "```sql", 2)
		sql = parts[1]
		if idx := strings.Index(sql, "```"); idx >= 0 {
			sql = sql[:idx]
		}
	} else if strings.Contains(sql, "```") {
		parts := strings.Split(sql, "```")
		if len(parts) >= 2 {
			sql = parts[1]
		}
	}

	sql = strings.TrimSpace(sql)
	sql = strings.TrimRight(sql, ";")

	return strings.TrimSpace(sql)
}

// Validate normalizes and validates the statement. On success it returns the
// normalized SQL ready for execution; any failure is an unsafe_sql error
// carrying the offending detail and the statement text.
func (v *Validator) Validate(sql string) (string, error) {
	normalized := Normalize(sql)
	if normalized == "" {
		return "", errors.New(errors.ErrTypeUnsafeSQL, "empty SQL statement")
	}

	pieces, err := sqlparser.SplitStatementToPieces(normalized)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrTypeUnsafeSQL, "SQL parsing failed\nSQL: %s", normalized)
	}

	var statements []string
	for _, p := range pieces {
		if strings.TrimSpace(p) != "" {
			statements = append(statements, p)
		}
	}

	if len(statements) != 1 {
		return "", errors.Newf(
			errors.ErrTypeUnsafeSQL,
			"expected exactly one statement, got %d\nSQL: %s",
			len(statements), normalized,
		)
	}

	stmt, err := sqlparser.Parse(statements[0])
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrTypeUnsafeSQL, "SQL parsing failed\nSQL: %s", normalized)
	}

	if _, ok := stmt.(sqlparser.SelectStatement); !ok {
		return "", errors.Newf(
			errors.ErrTypeUnsafeSQL,
			"only SELECT queries are allowed\nSQL: %s",
			normalized,
		)
	}

	if err := v.checkTables(stmt, normalized); err != nil {
		return "", err
	}

	if err := v.checkColumns(stmt, normalized); err != nil {
		return "", err
	}

	return normalized, nil
}

func (v *Validator) checkTables(stmt sqlparser.Statement, sql string) error {
	var badTable string

	_ = sqlparser.Walk(func(node sqlparser.SQLNode) (bool, error) {
		if t, ok := node.(sqlparser.TableName); ok {
			name := t.Name.String()
			if name != "" && !v.desc.AllowsTable(strings.ToLower(name)) {
				badTable = name
				return false, nil
			}
		}

		return true, nil
	}, stmt)

	if badTable != "" {
		return errors.Newf(errors.ErrTypeUnsafeSQL, "invalid table: %s\nSQL: %s", badTable, sql)
	}

	return nil
}

func (v *Validator) checkColumns(stmt sqlparser.Statement, sql string) error {
	// Statement-local aliases are legal column references in ORDER BY and
	// HAVING, so collect them before checking columns.
	aliases := make(map[string]struct{})

	_ = sqlparser.Walk(func(node sqlparser.SQLNode) (bool, error) {
		if ae, ok := node.(*sqlparser.AliasedExpr); ok && !ae.As.IsEmpty() {
			aliases[ae.As.Lowered()] = struct{}{}
		}

		return true, nil
	}, stmt)

	var badColumn string

	_ = sqlparser.Walk(func(node sqlparser.SQLNode) (bool, error) {
		if col, ok := node.(*sqlparser.ColName); ok {
			name := col.Name.Lowered()

			if _, ok := aliases[name]; ok {
				return true, nil
			}

			if _, ok := v.columns[name]; !ok {
				badColumn = col.Name.String()
				return false, nil
			}
		}

		return true, nil
	}, stmt)

	if badColumn != "" {
		return errors.Newf(errors.ErrTypeUnsafeSQL, "invalid column: %s\nSQL: %s", badColumn, sql)
	}

	return nil
}
