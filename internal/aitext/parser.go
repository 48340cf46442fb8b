package aitext

import (
	"strings"
)

// Parse converts one model completion into a fully-populated Record for the
// given schema. Absent or malformed fields fall back to deterministic
// defaults derived from the query, so the caller always receives a complete
// record and never an error.
func Parse(schema Schema, query, text string) Record {
	if strings.TrimSpace(text) == "" {
		return Defaults(schema, query)
	}

	clean := StripMarkdown(text)
	lines := strings.Split(clean, "\n")
	labelSet := buildLabelSet(schema)

	record := make(Record, len(schema))
	for _, field := range schema {
		record[field.Name] = extractField(field, query, clean, lines, labelSet)
	}
	return record
}

// Defaults builds the all-fallback record used when the upstream call failed
// or returned nothing usable. Pure function of the query.
func Defaults(schema Schema, query string) Record {
	record := make(Record, len(schema))
	for _, field := range schema {
		record[field.Name] = defaultValue(field, query)
	}
	return record
}

func defaultValue(field FieldSpec, query string) Value {
	switch field.Kind {
	case Enum:
		return Value{Text: field.EnumDefault}
	case List:
		return Value{Items: splitList(field.Default(query), field.MaxItems)}
	default:
		return Value{Text: field.Default(query)}
	}
}

func extractField(field FieldSpec, query, clean string, lines []string, labelSet map[string]bool) Value {
	switch field.Kind {
	case Enum:
		return Value{Text: matchEnum(clean, field)}

	case List:
		raw := extractLine(lines, field.Label)
		items := splitList(raw, field.MaxItems)
		if len(items) == 0 {
			return defaultValue(field, query)
		}
		return Value{Items: items}

	case Multiline:
		raw := extractBlock(lines, field.Label, labelSet)
		if raw == "" {
			return defaultValue(field, query)
		}
		return Value{Text: raw}

	default:
		raw := extractLine(lines, field.Label)
		if raw == "" {
			return defaultValue(field, query)
		}
		return Value{Text: raw}
	}
}

// matchEnum searches the whole completion for "LABEL: value" in candidate
// order; the first hit wins, otherwise the declared default.
func matchEnum(clean string, field FieldSpec) string {
	lower := strings.ToLower(clean)
	label := strings.ToLower(field.Label)
	for _, candidate := range field.Enum {
		needle := strings.ToLower(candidate)
		if strings.Contains(lower, label+": "+needle) || strings.Contains(lower, label+":"+needle) {
			return candidate
		}
	}
	return field.EnumDefault
}

// extractLine returns the trimmed remainder of the first line starting with
// "LABEL:" (case-insensitive), or "".
func extractLine(lines []string, label string) string {
	for _, line := range lines {
		if rest, ok := labelRemainder(line, label); ok {
			return strings.TrimSpace(rest)
		}
	}
	return ""
}

// extractBlock returns the labeled line plus continuation lines up to the
// next known label or blank line, joined with newlines.
func extractBlock(lines []string, label string, labelSet map[string]bool) string {
	for i, line := range lines {
		rest, ok := labelRemainder(line, label)
		if !ok {
			continue
		}
		parts := []string{strings.TrimSpace(rest)}
		for _, next := range lines[i+1:] {
			trimmed := strings.TrimSpace(next)
			if trimmed == "" || isKnownLabelLine(trimmed, labelSet) {
				break
			}
			parts = append(parts, trimmed)
		}
		block := strings.TrimSpace(strings.Join(parts, "\n"))
		return block
	}
	return ""
}

// labelRemainder checks a single line for "LABEL:" and returns what follows
func labelRemainder(line, label string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) <= len(label) {
		return "", false
	}
	if !strings.EqualFold(trimmed[:len(label)], label) {
		return "", false
	}
	rest := strings.TrimSpace(trimmed[len(label):])
	if !strings.HasPrefix(rest, ":") {
		return "", false
	}
	return rest[1:], true
}

func isKnownLabelLine(line string, labelSet map[string]bool) bool {
	idx := strings.Index(line, ":")
	if idx <= 0 {
		return false
	}
	return labelSet[strings.ToUpper(strings.TrimSpace(line[:idx]))]
}

func buildLabelSet(schema Schema) map[string]bool {
	set := make(map[string]bool, len(schema))
	for _, f := range schema {
		set[strings.ToUpper(f.Label)] = true
	}
	return set
}

// splitList splits a comma-separated field, trims each item, drops empties,
// and truncates to max items (no cap when max is zero).
func splitList(raw string, max int) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if item := strings.TrimSpace(p); item != "" {
			items = append(items, item)
		}
	}
	if max > 0 && len(items) > max {
		items = items[:max]
	}
	return items
}
