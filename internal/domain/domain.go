package domain

// Key identifies one of the three fixed query domains
type Key string

const (
	KeyVisitor     Key = "visitor"
	KeyHierarchy   Key = "hierarchy"
	KeyBeneficiary Key = "beneficiary"
)

// Descriptor carries everything the pipeline needs to serve one domain:
// the table contract, the column allowlist, and the stage prompts.
// Descriptors are built at init and never mutated.
type Descriptor struct {
	Key        Key
	Table      string
	SchemaText string

	columns map[string]struct{}

	// Stage prompt text. The planner and synthesizer prompts are sent as
	// system messages; composer rules are folded into the answer prompt.
	PlannerPrompt     string
	SynthesizerPrompt string
	ComposerRules     string

	// Example questions surfaced by the CLI.
	Examples []string

	// canonicalizers maps columns with locked value sets to their resolver.
	canonicalizers map[string]func(string) (string, bool)
}

func newDescriptor(key Key, table string, columns []string) *Descriptor {
	d := &Descriptor{
		Key:     key,
		Table:   table,
		columns: make(map[string]struct{}, len(columns)),
	}
	for _, c := range columns {
		d.columns[c] = struct{}{}
	}

	return d
}

// AllowsTable reports whether the named table is this domain's table
func (d *Descriptor) AllowsTable(name string) bool {
	return name == d.Table
}

// AllowsColumn reports whether the named column is in the allowlist
func (d *Descriptor) AllowsColumn(name string) bool {
	_, ok := d.columns[name]
	return ok
}

// CanonicalizeFilters rewrites filter values for columns with locked value
// sets to their canonical form. Values that do not resolve are left alone;
// the planner is instructed to ask for clarification rather than guess, so
// an unresolved value here means the model already chose to pass it through.
func (d *Descriptor) CanonicalizeFilters(filters map[string]any) {
	for column, resolve := range d.canonicalizers {
		raw, ok := filters[column]
		if !ok {
			continue
		}

		if s, ok := raw.(string); ok {
			if canonical, ok := resolve(s); ok {
				filters[column] = canonical
			}
		}
	}
}

// Columns returns a copy of the column allowlist
func (d *Descriptor) Columns() []string {
	out := make([]string, 0, len(d.columns))
	for c := range d.columns {
		out = append(out, c)
	}

	return out
}

var registry = map[Key]*Descriptor{
	KeyVisitor:     visitorDescriptor,
	KeyHierarchy:   hierarchyDescriptor,
	KeyBeneficiary: beneficiaryDescriptor,
}

// ByKey returns the descriptor for the given domain key
func ByKey(key Key) (*Descriptor, bool) {
	d, ok := registry[key]
	return d, ok
}

// All returns the three domain descriptors
func All() []*Descriptor {
	return []*Descriptor{visitorDescriptor, hierarchyDescriptor, beneficiaryDescriptor}
}
