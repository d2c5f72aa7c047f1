package narrative

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"github.com/cloud-ru/npv-dashboard/internal/calculations"
	"github.com/cloud-ru/npv-dashboard/internal/metrics"
)

// ErrRequestInFlight is returned when a narration is already pending.
var ErrRequestInFlight = errors.New("narrative request already in flight")

// Narrator requests commentary from a Provider and tracks one request at a time.
type Narrator struct {
	provider Provider
	logger   *zap.Logger
	tracer   trace.Tracer
	timeout  time.Duration
	now      func() time.Time

	mu    sync.Mutex
	state State
	wg    sync.WaitGroup
}

// Option configures a Narrator.
type Option func(*Narrator)

// WithTimeout bounds each provider call; zero means no bound.
func WithTimeout(d time.Duration) Option {
	return func(n *Narrator) { n.timeout = d }
}

// WithTracer sets the tracer used for provider spans.
func WithTracer(t trace.Tracer) Option {
	return func(n *Narrator) { n.tracer = t }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(n *Narrator) { n.now = now }
}

// NewNarrator returns an idle Narrator.
func NewNarrator(provider Provider, logger *zap.Logger, opts ...Option) *Narrator {
	n := &Narrator{
		provider: provider,
		logger:   logger,
		tracer:   noop.NewTracerProvider().Tracer("narrative"),
		now:      time.Now,
		state:    idle(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// State returns a snapshot of the current narration state.
func (n *Narrator) State() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

// Start launches an asynchronous narration and returns the pending state.
func (n *Narrator) Start(m calculations.ProjectMetrics, table []calculations.PeriodRecord) (State, error) {
	prompt, err := BuildPrompt(m, table)
	if err != nil {
		return State{}, err
	}

	st, err := n.begin()
	if err != nil {
		return st, err
	}

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		n.run(context.Background(), prompt)
	}()
	return st, nil
}

// Generate runs a narration synchronously and returns its terminal state.
// A provider failure is reported in the state, not as an error.
func (n *Narrator) Generate(ctx context.Context, m calculations.ProjectMetrics, table []calculations.PeriodRecord) (State, error) {
	prompt, err := BuildPrompt(m, table)
	if err != nil {
		return State{}, err
	}
	if _, err := n.begin(); err != nil {
		return State{}, err
	}
	return n.run(ctx, prompt), nil
}

// Wait blocks until background narrations finish.
func (n *Narrator) Wait() {
	n.wg.Wait()
}

func (n *Narrator) begin() (State, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.state.IsPending() {
		return n.state, ErrRequestInFlight
	}
	n.state = pending(uuid.NewString(), n.now())
	return n.state, nil
}

func (n *Narrator) run(ctx context.Context, prompt string) State {
	current := n.State()
	log := n.logger.With(
		zap.String("request_id", current.RequestID),
		zap.String("provider", n.provider.Name()),
	)

	if n.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}

	ctx, span := n.tracer.Start(ctx, "narrative.generate")
	defer span.End()
	span.SetAttributes(
		attribute.String("request_id", current.RequestID),
		attribute.String("provider", n.provider.Name()),
	)

	started := n.now()
	text, err := n.provider.GenerateResponse(ctx, prompt, SystemPrompt)
	metrics.NarrativeDuration.WithLabelValues(n.provider.Name()).Observe(n.now().Sub(started).Seconds())

	var html string
	if err == nil {
		text = CleanMarkdown(text)
		html, err = RenderHTML(text)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "narrative failed")
		metrics.NarrativeRequests.WithLabelValues(n.provider.Name(), "error").Inc()
		log.Error("narrative request failed", zap.Error(err))
		n.state = failed(current, n.now())
		return n.state
	}

	metrics.NarrativeRequests.WithLabelValues(n.provider.Name(), "success").Inc()
	log.Info("narrative request succeeded", zap.Int("chars", len(text)))
	n.state = succeeded(current, text, html, n.now())
	return n.state
}

// String is used in logs.
func (s State) String() string {
	return fmt.Sprintf("%s(%s)", s.Status, s.RequestID)
}
