package prompt

import (
	"fmt"
	"strings"

	"github.com/bumpsafe/bumpsafe-be/internal/aitext"
)

// Request carries everything needed to build a tool prompt
type Request struct {
	// Preamble is the tool-specific instruction, already interpolated with
	// the user's query
	Preamble string

	// Query is the raw user input (food name, medication name, week)
	Query string

	// PregnancyWeek adds gestational context when known; zero means unknown
	PregnancyWeek int

	Schema aitext.Schema
}

// Builder renders LABEL:-line prompts from a tool schema. Because the same
// schema drives extraction, the labels requested here are exactly the labels
// the parser will look for.
type Builder struct{}

// NewBuilder creates a new prompt builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Build constructs the full prompt text for one tool invocation
func (b *Builder) Build(req Request) string {
	var sb strings.Builder
	sb.Grow(1024)

	sb.WriteString("You are a careful pregnancy-safety assistant. ")
	sb.WriteString("Answer for a pregnant person and err on the side of caution. ")
	sb.WriteString("Do not use markdown formatting.\n\n")

	sb.WriteString(req.Preamble)
	sb.WriteString("\n")

	if req.PregnancyWeek > 0 {
		sb.WriteString(fmt.Sprintf("The user is %d weeks pregnant.\n", req.PregnancyWeek))
	}

	sb.WriteString("\nRespond with exactly these lines and nothing else:\n")
	for _, field := range req.Schema {
		sb.WriteString(field.Label)
		sb.WriteString(": ")
		sb.WriteString(fieldInstruction(field))
		sb.WriteString("\n")
	}

	return sb.String()
}

func fieldInstruction(field aitext.FieldSpec) string {
	switch field.Kind {
	case aitext.Enum:
		return fmt.Sprintf("one of %s. %s", strings.Join(field.Enum, ", "), field.Hint)
	case aitext.List:
		return fmt.Sprintf("up to %d items, comma-separated. %s", field.MaxItems, field.Hint)
	default:
		return field.Hint
	}
}
