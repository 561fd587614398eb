package routing

import (
	"cmp"
	"time"

	"github.com/google/uuid"

	"actionkernel/internal/device"
	"actionkernel/internal/intent"
	"actionkernel/internal/privacy"
	"actionkernel/pkg/domain"
)

const routeAuditIDPrefix = "audit_"

// Router decides whether a classified command would be permitted to run.
// It holds no mutable state and is safe for concurrent use.
type Router struct {
	kernel *privacy.Kernel
	now    func() time.Time
	newID  func() string
}

// Option configures a Router.
type Option func(*Router)

// WithKernel sets the privacy kernel consulted on every route.
func WithKernel(k *privacy.Kernel) Option {
	return func(r *Router) {
		if k != nil {
			r.kernel = k
		}
	}
}

// WithClock replaces the wall clock used for route audit timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Router) {
		if now != nil {
			r.now = now
		}
	}
}

// WithIDGenerator replaces the route audit ID source. IDs are for log
// correlation only.
func WithIDGenerator(newID func() string) Option {
	return func(r *Router) {
		if newID != nil {
			r.newID = newID
		}
	}
}

func NewRouter(opts ...Option) *Router {
	r := &Router{
		kernel: privacy.NewKernel(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultRouter = NewRouter()

// RouteVoiceCommand routes cmd with the default router.
func RouteVoiceCommand(cmd intent.Command, profile *device.Profile, opts Options) Suggestion {
	return defaultRouter.Route(cmd, profile, opts)
}

// Route runs cmd through the gate chain. A nil profile is replaced by the
// fail-closed default. The privacy decision is computed on every call and
// embedded whatever the outcome.
func (r *Router) Route(cmd intent.Command, profile *device.Profile, opts Options) Suggestion {
	if profile == nil {
		profile = device.DefaultProfile()
	}
	intended := intendedContext(cmd.Scope)
	contextID := cmp.Or(opts.ContextID, intended)

	in := routeInput{
		cmd:       cmd,
		device:    profile,
		token:     opts.ConsentToken,
		contextID: contextID,
		intended:  intended,
		privacy: r.kernel.Evaluate(privacy.Request{
			Purpose:         domain.ConsentPurposeExecution,
			FromScope:       domain.NormalizeScope(opts.FromScope),
			TargetScope:     domain.NormalizeScope(opts.TargetScope),
			ContextID:       contextID,
			PersistentOptIn: opts.PersistentOptIn,
		}, opts.ConsentToken),
	}
	return r.decide(in)
}

// decide applies the gate chain to a resolved input.
func (r *Router) decide(in routeInput) Suggestion {
	for _, g := range gates {
		if !g.denies(in) {
			continue
		}
		reason := g.reason(in)
		return Suggestion{
			Accepted: false,
			Reason:   cmp.Or(reason, domain.ReasonPrivacyDenied),
			Route:    r.result(false, reason, in.contextID, g.event, g.details(in)),
			Command:  in.cmd,
			Privacy:  in.privacy,
		}
	}

	return Suggestion{
		Accepted:    true,
		Route:       r.result(true, "", in.contextID, EventAllowSymbolicRoute, acceptDetails(in)),
		Command:     in.cmd,
		Privacy:     in.privacy,
		ServiceHint: ServiceHintFutureServices,
		APIHint:     APIHintNoHardDependencies,
	}
}

func (r *Router) result(accepted bool, reason domain.DenyReason, contextID domain.ExecutionContextID, event string, details map[string]any) RouteResult {
	return RouteResult{
		Accepted:  accepted,
		Reason:    reason,
		ContextID: contextID,
		Mode:      ModeSymbolic,
		Audit: ContextAuditEvent{
			ID:        routeAuditIDPrefix + r.newID(),
			Timestamp: r.now().UTC().Truncate(time.Millisecond),
			Event:     event,
			ContextID: contextID,
			Details:   details,
		},
	}
}
