package aitext

// Kind describes how a field is extracted from model output
type Kind int

const (
	// Text is a single-line free-text field
	Text Kind = iota
	// Multiline absorbs continuation lines until the next label or blank line
	Multiline
	// List is a comma-separated list, trimmed and truncated to MaxItems
	List
	// Enum is matched against a fixed vocabulary with a guaranteed default
	Enum
)

// FieldSpec declares one labeled field of a tool's response. The same spec
// drives prompt generation and extraction, so the label vocabulary the model
// is asked for is always the vocabulary the parser looks for.
type FieldSpec struct {
	// Name is the key the field is published under
	Name string

	// Label is the uppercase line prefix the model is instructed to emit,
	// without the trailing colon (e.g. "SAFETY_LEVEL")
	Label string

	Kind Kind

	// Hint is the per-field instruction rendered into the prompt
	Hint string

	// Enum is the allowed vocabulary for Enum fields, in match-priority order
	Enum []string

	// EnumDefault is used when no Enum candidate matches. Must be set for
	// Enum fields.
	EnumDefault string

	// MaxItems caps List fields after splitting
	MaxItems int

	// Default produces the fallback value from the original query when the
	// field is absent or the whole call failed. Never nil for non-Enum
	// fields; list defaults are comma-separated and go through the same
	// splitting rules.
	Default func(query string) string
}

// Value is the extracted (or defaulted) content of one field
type Value struct {
	Text  string   `json:"text,omitempty"`
	Items []string `json:"items,omitempty"`
}

// Record is a fully-populated extraction result: one Value per schema field,
// no field ever missing.
type Record map[string]Value

// Schema is the ordered field set of one tool
type Schema []FieldSpec

// Labels returns every label in declaration order
func (s Schema) Labels() []string {
	labels := make([]string, len(s))
	for i, f := range s {
		labels[i] = f.Label
	}
	return labels
}
