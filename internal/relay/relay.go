// Package relay turns a user query into an answer, either from the upstream
// generator or from a canned set when the upstream is absent or failing.
package relay

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// ErrMissingQuery is returned by Handle for an empty query.
var ErrMissingQuery = errors.New("query is required")

// defaultFailureReason is used when the upstream error carries no message.
const defaultFailureReason = "Erro na API Gemini"

// Generator produces an answer for query with a single upstream attempt.
type Generator interface {
	Generate(ctx context.Context, query string) (string, error)
}

// Picker returns an index in [0, n).
type Picker func(n int) int

type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeSimulated
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeSimulated:
		return "simulated"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is what a relay call resolved to. Note is set only for
// OutcomeSimulated and Reason only for OutcomeFailed.
type Result struct {
	Outcome Outcome
	Answer  string
	Note    string
	Reason  string
}

type Relay struct {
	generator Generator
	pick      Picker
	logger    *logrus.Logger
}

type Option func(*Relay)

func WithPicker(pick Picker) Option {
	return func(r *Relay) {
		if pick != nil {
			r.pick = pick
		}
	}
}

// New builds a relay. A nil generator puts the relay in simulated mode for
// its whole lifetime.
func New(generator Generator, logger *logrus.Logger, opts ...Option) *Relay {
	r := &Relay{
		generator: generator,
		pick:      rand.IntN,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Simulated reports whether the relay answers without an upstream.
func (r *Relay) Simulated() bool {
	return r.generator == nil
}

// Handle resolves query. The only error returned is ErrMissingQuery; every
// upstream failure is folded into an OutcomeFailed result.
func (r *Relay) Handle(ctx context.Context, query string) (Result, error) {
	if query == "" {
		return Result{}, ErrMissingQuery
	}

	if r.generator == nil {
		r.logger.WithField("query", query).Info("Answering in simulator mode")
		return simulate(r.pick), nil
	}

	r.logger.WithField("query", query).Info("Sending query to Gemini")
	answer, err := r.generator.Generate(ctx, query)
	if err != nil {
		r.logger.WithError(err).WithField("query", query).Error("Gemini request failed, using fallback answer")
	}
	return resolve(answer, err, r.pick), nil
}

func simulate(pick Picker) Result {
	return Result{
		Outcome: OutcomeSimulated,
		Answer:  choose(SimulatedResponses, pick),
		Note:    SimulatorNote,
	}
}

// resolve maps the single upstream attempt to a result.
func resolve(answer string, err error, pick Picker) Result {
	if err == nil {
		return Result{Outcome: OutcomeSuccess, Answer: answer}
	}

	reason := err.Error()
	if reason == "" {
		reason = defaultFailureReason
	}
	return Result{
		Outcome: OutcomeFailed,
		Answer:  choose(FallbackResponses, pick),
		Reason:  reason,
	}
}

func choose(options []string, pick Picker) string {
	i := pick(len(options))
	if i < 0 || i >= len(options) {
		i = 0
	}
	return options[i]
}
