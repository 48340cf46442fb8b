package tools

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bumpsafe/bumpsafe-be/internal/aitext"
	"github.com/bumpsafe/bumpsafe-be/internal/circuitbreaker"
	"github.com/bumpsafe/bumpsafe-be/internal/prompt"
	"github.com/bumpsafe/bumpsafe-be/internal/triage"
	"github.com/bumpsafe/bumpsafe-be/pkg/llm"
)

// Source says where a tool result came from
const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
	SourceTriage   = "triage"
)

// Request is one tool invocation
type Request struct {
	Tool  string
	Query string

	// Week is the gestational week when the caller knows it; zero otherwise
	Week int

	// Session and Sequence let clients discard late responses to superseded
	// queries. Both optional.
	Session  string
	Sequence int64
}

// Response always carries a fully-populated record; failures change only the
// Source, never the shape.
type Response struct {
	Tool     string        `json:"tool"`
	Query    string        `json:"query"`
	Record   aitext.Record `json:"record"`
	Source   string        `json:"source"`
	Notice   string        `json:"notice,omitempty"`
	Sequence int64         `json:"sequence,omitempty"`
	Stale    bool          `json:"stale,omitempty"`
}

// Service runs tool invocations: triage screen, prompt build, circuit-breaker
// guarded completion call, parse, and guaranteed fallback.
type Service struct {
	client    llm.Client
	builder   PromptInterface
	screener  ScreenerInterface
	breaker   *circuitbreaker.CircuitBreaker
	sequencer *Sequencer
	timeout   time.Duration
}

// Interfaces for dependencies
type PromptInterface interface {
	Build(req prompt.Request) string
}

type ScreenerInterface interface {
	Screen(query string) triage.Result
}

// NewService creates a tool service
func NewService(client llm.Client, builder PromptInterface, screener ScreenerInterface) *Service {
	return &Service{
		client:    client,
		builder:   builder,
		screener:  screener,
		breaker:   circuitbreaker.NewCircuitBreaker(5, 5*time.Minute),
		sequencer: NewSequencer(10 * time.Minute),
		timeout:   30 * time.Second,
	}
}

// SetTimeout overrides the per-call completion timeout
func (s *Service) SetTimeout(d time.Duration) {
	s.timeout = d
}

// Run executes one tool invocation. The only error is an unknown tool name;
// every upstream failure mode resolves to a fallback record instead.
func (s *Service) Run(ctx context.Context, req Request) (Response, error) {
	tool, ok := Lookup(req.Tool)
	if !ok {
		return Response{}, fmt.Errorf("unknown tool %q", req.Tool)
	}

	s.sequencer.Begin(req.Session, req.Sequence)

	resp := Response{
		Tool:     tool.Name,
		Query:    req.Query,
		Sequence: req.Sequence,
	}

	if screen := s.screener.Screen(req.Query); screen.Level == triage.LevelEmergency {
		log.Printf("Triage matched %q for tool=%s, skipping AI call", screen.Matched, tool.Name)
		resp.Record = aitext.Defaults(tool.Schema, req.Query)
		resp.Source = SourceTriage
		resp.Notice = urgentNotice(screen.Matched)
		resp.Stale = s.sequencer.IsStale(req.Session, req.Sequence)
		return resp, nil
	}

	promptText := s.builder.Build(prompt.Request{
		Preamble:      tool.Preamble(req.Query, req.Week),
		Query:         req.Query,
		PregnancyWeek: req.Week,
		Schema:        tool.Schema,
	})

	var completion string
	err := s.breaker.Call(func() error {
		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		text, err := s.client.Complete(callCtx, llm.Request{
			Prompt:      promptText,
			Temperature: 0.4,
			MaxTokens:   500,
		})
		if err != nil {
			return err
		}
		completion = text
		return nil
	})

	switch {
	case err != nil:
		log.Printf("Completion failed for tool=%s: %v", tool.Name, err)
		resp.Record = aitext.Defaults(tool.Schema, req.Query)
		resp.Source = SourceFallback
	case strings.TrimSpace(completion) == "":
		log.Printf("Empty completion for tool=%s", tool.Name)
		resp.Record = aitext.Defaults(tool.Schema, req.Query)
		resp.Source = SourceFallback
	default:
		resp.Record = aitext.Parse(tool.Schema, req.Query, completion)
		resp.Source = SourceAI
	}

	resp.Stale = s.sequencer.IsStale(req.Session, req.Sequence)
	return resp, nil
}

func urgentNotice(matched string) string {
	return fmt.Sprintf(
		"Your message mentions %q. This tool can't help with urgent symptoms - please contact your healthcare provider or emergency services right away.",
		matched,
	)
}
