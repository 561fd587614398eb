// Package kernel hosts the privacy-gated routing kernel behind one service:
// it classifies, routes and ranks through the pure decision packages, and adds
// the ambient concerns around them (audit sink, metrics, logging, tracing).
//
// The decisions themselves stay pure. The service only observes them; it
// never changes an outcome except by refusing to return one when the audit
// sink fails.
package kernel

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"actionkernel/internal/audit"
	"actionkernel/internal/consent"
	"actionkernel/internal/device"
	"actionkernel/internal/intent"
	"actionkernel/internal/interaction"
	"actionkernel/internal/kernel/metrics"
	"actionkernel/internal/privacy"
	"actionkernel/internal/routing"
	dErrors "actionkernel/pkg/domain-errors"
	"actionkernel/pkg/platform/sentinel"
	"actionkernel/pkg/requestcontext"
)

const (
	tracerName              = "actionkernel/internal/kernel"
	defaultBatchConcurrency = 4
)

// RouteRequest carries everything besides the transcript a routing attempt
// needs. A nil Profile is resolved from the request's User-Agent when the
// service has a catalog, and otherwise left to the router's fail-closed
// default.
type RouteRequest struct {
	Profile *device.Profile
	Options routing.Options
}

type Service struct {
	classifier  *intent.Classifier
	kernel      *privacy.Kernel
	router      *routing.Router
	stamper     *audit.Stamper
	catalog     *device.Catalog
	sink        AuditSink
	logger      *slog.Logger
	metrics     *metrics.Metrics
	tracer      trace.Tracer
	concurrency int
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithAuditSink sets where both audit trails are recorded. Without a sink the
// events are still produced and returned, just not recorded.
func WithAuditSink(sink AuditSink) Option {
	return func(s *Service) {
		s.sink = sink
	}
}

func WithClassifier(c *intent.Classifier) Option {
	return func(s *Service) {
		s.classifier = c
	}
}

// WithKernel sets the privacy kernel. Unless WithRouter is also given, the
// router is built on the same kernel.
func WithKernel(k *privacy.Kernel) Option {
	return func(s *Service) {
		s.kernel = k
	}
}

func WithRouter(r *routing.Router) Option {
	return func(s *Service) {
		s.router = r
	}
}

func WithStamper(st *audit.Stamper) Option {
	return func(s *Service) {
		s.stamper = st
	}
}

// WithCatalog enables User-Agent based profile resolution.
func WithCatalog(c *device.Catalog) Option {
	return func(s *Service) {
		s.catalog = c
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// WithBatchConcurrency bounds how many transcripts RouteBatch routes at once.
// Values below one are ignored.
func WithBatchConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

func New(opts ...Option) *Service {
	s := &Service{concurrency: defaultBatchConcurrency}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.classifier == nil {
		s.classifier = intent.NewClassifier()
	}
	if s.stamper == nil {
		s.stamper = audit.NewStamper()
	}
	if s.kernel == nil {
		s.kernel = privacy.NewKernel(privacy.WithStamper(s.stamper))
	}
	if s.router == nil {
		s.router = routing.NewRouter(routing.WithKernel(s.kernel))
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(tracerName)
	}
	return s
}

// Parse classifies transcript without routing it.
func (s *Service) Parse(transcript string) []intent.Command {
	return s.classifier.Parse(transcript)
}

// RouteTranscript classifies transcript, routes the command and records both
// audit events.
//
// Errors: CodeTimeout when ctx is already done, CodeInternal when the audit
// sink refuses an event. No suggestion is returned in either case.
func (s *Service) RouteTranscript(ctx context.Context, transcript string, req RouteRequest) (*routing.Suggestion, error) {
	ctx, span := s.tracer.Start(ctx, "kernel.RouteTranscript")
	defer span.End()

	if err := ctx.Err(); err != nil {
		return nil, s.fail(span, dErrors.Wrap(err, dErrors.CodeTimeout, "route cancelled"))
	}

	start := time.Now()
	cmd := s.classifier.Parse(transcript)[0]
	s.metrics.ObserveConfidence(cmd.Confidence)

	sug := s.router.Route(cmd, s.resolveProfile(ctx, req.Profile), req.Options)
	if err := s.record(ctx, sug); err != nil {
		return nil, s.fail(span, err)
	}

	s.metrics.ObserveRoute(sug.Accepted, sug.Reason.String(), time.Since(start).Seconds())
	s.metrics.ObservePrivacyDecision(string(sug.Privacy.Audit.Decision), sug.Privacy.Reason.String())

	span.SetAttributes(
		attribute.String("actionkernel.action", cmd.ActionType.String()),
		attribute.Float64("actionkernel.confidence", cmd.Confidence),
		attribute.Bool("actionkernel.accepted", sug.Accepted),
		attribute.String("actionkernel.reason", sug.Reason.String()),
		attribute.String("actionkernel.route_audit_id", sug.Route.Audit.ID),
	)
	s.logger.InfoContext(ctx, "voice route decided",
		"request_id", requestcontext.RequestID(ctx),
		"token_id", tokenID(req.Options.ConsentToken),
		"action", cmd.ActionType,
		"context_id", sug.Route.ContextID,
		"accepted", sug.Accepted,
		"reason", sug.Reason,
		"privacy_audit_id", sug.Privacy.Audit.ID,
		"route_audit_id", sug.Route.Audit.ID,
	)
	return &sug, nil
}

// RouteBatch routes several transcripts, typically the n-best list of one
// utterance, with bounded parallelism. Results keep input order. The first
// failure cancels the remaining work.
//
// Errors: as RouteTranscript; CodeTimeout when ctx ends mid-batch.
func (s *Service) RouteBatch(ctx context.Context, transcripts []string, req RouteRequest) ([]routing.Suggestion, error) {
	ctx, span := s.tracer.Start(ctx, "kernel.RouteBatch",
		trace.WithAttributes(attribute.Int("actionkernel.batch_size", len(transcripts))))
	defer span.End()

	results := make([]routing.Suggestion, len(transcripts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, transcript := range transcripts {
		g.Go(func() error {
			sug, err := s.RouteTranscript(gctx, transcript, req)
			if err != nil {
				return err
			}
			results[i] = *sug
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if ctx.Err() != nil && !dErrors.Is(err, dErrors.CodeTimeout) {
			err = dErrors.Wrap(err, dErrors.CodeTimeout, "route batch cancelled")
		}
		return nil, s.fail(span, err)
	}
	return results, nil
}

// Suggest ranks advisory actions for a chat message or search query.
//
// Errors: CodeInvalidInput for an unknown category, CodeTimeout when ctx is
// already done.
func (s *Service) Suggest(ctx context.Context, category interaction.Category, text string, ictx interaction.Context) ([]interaction.Suggestion, error) {
	ctx, span := s.tracer.Start(ctx, "kernel.Suggest",
		trace.WithAttributes(attribute.String("actionkernel.category", category.String())))
	defer span.End()

	if err := ctx.Err(); err != nil {
		return nil, s.fail(span, dErrors.Wrap(err, dErrors.CodeTimeout, "suggest cancelled"))
	}

	var out []interaction.Suggestion
	switch category {
	case interaction.CategoryChat:
		out = interaction.ResolveChatActions(text, ictx)
	case interaction.CategorySearch:
		out = interaction.ResolveSearchActions(text, ictx)
	default:
		return nil, s.fail(span, dErrors.New(dErrors.CodeInvalidInput, "invalid category: "+category.String()))
	}

	s.metrics.AddSuggestions(category.String(), len(out))
	span.SetAttributes(attribute.Int("actionkernel.suggestions", len(out)))
	s.logger.DebugContext(ctx, "suggestions ranked",
		"request_id", requestcontext.RequestID(ctx),
		"category", category,
		"count", len(out),
		"threshold", interaction.Threshold(ictx),
	)
	return out, nil
}

// EvaluatePrivacy runs a bare privacy evaluation and records its event.
//
// Errors: CodeInternal when the audit sink refuses the event.
func (s *Service) EvaluatePrivacy(ctx context.Context, req privacy.Request, token *consent.Token) (privacy.Decision, error) {
	ctx, span := s.tracer.Start(ctx, "kernel.EvaluatePrivacy")
	defer span.End()

	d := s.kernel.Evaluate(req, token)
	if s.sink != nil {
		if err := s.sink.RecordPrivacy(ctx, d.Audit); err != nil {
			return privacy.Decision{}, s.fail(span, s.sinkError(ctx, err))
		}
	}

	s.metrics.ObservePrivacyDecision(string(d.Audit.Decision), d.Reason.String())
	span.SetAttributes(
		attribute.Bool("actionkernel.allowed", d.Allowed),
		attribute.String("actionkernel.reason", d.Reason.String()),
	)
	s.logger.InfoContext(ctx, "privacy evaluated",
		"request_id", requestcontext.RequestID(ctx),
		"token_id", tokenID(token),
		"purpose", req.Purpose,
		"allowed", d.Allowed,
		"reason", d.Reason,
		"audit_id", d.Audit.ID,
	)
	return d, nil
}

// Report summarizes privacy audit events.
func (s *Service) Report(events []audit.Event) audit.Report {
	return s.stamper.Report(events)
}

func (s *Service) resolveProfile(ctx context.Context, p *device.Profile) *device.Profile {
	if p != nil || s.catalog == nil {
		return p
	}
	ua := requestcontext.UserAgent(ctx)
	if ua == "" {
		return nil
	}
	return s.catalog.ProfileFor(ua)
}

// record writes the privacy event before the route event. Both must land
// for the suggestion to be released.
func (s *Service) record(ctx context.Context, sug routing.Suggestion) error {
	if s.sink == nil {
		return nil
	}
	if err := s.sink.RecordPrivacy(ctx, sug.Privacy.Audit); err != nil {
		return s.sinkError(ctx, err)
	}
	if err := s.sink.RecordRoute(ctx, sug.Route.Audit); err != nil {
		return s.sinkError(ctx, err)
	}
	return nil
}

func (s *Service) sinkError(ctx context.Context, err error) error {
	s.metrics.IncAuditSinkFailures()
	s.logger.ErrorContext(ctx, "CRITICAL: audit sink refused event",
		"request_id", requestcontext.RequestID(ctx),
		"error", err,
	)
	if errors.Is(err, sentinel.ErrUnavailable) {
		return dErrors.Wrap(err, dErrors.CodeInternal, "audit sink unavailable")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to record audit event")
}

func (s *Service) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

func tokenID(t *consent.Token) string {
	if t == nil {
		return ""
	}
	return t.ID
}
