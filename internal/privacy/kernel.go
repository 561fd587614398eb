package privacy

import (
	"actionkernel/internal/audit"
	"actionkernel/internal/consent"
	"actionkernel/pkg/domain"
)

// Kernel evaluates privacy requests against consent tokens. It holds no
// mutable state and is safe for concurrent use.
type Kernel struct {
	stamper *audit.Stamper
}

// Option configures a Kernel.
type Option func(*Kernel)

// WithStamper sets the audit stamper, typically to inject a clock.
func WithStamper(s *audit.Stamper) Option {
	return func(k *Kernel) {
		if s != nil {
			k.stamper = s
		}
	}
}

func NewKernel(opts ...Option) *Kernel {
	k := &Kernel{stamper: audit.NewStamper()}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

var defaultKernel = NewKernel()

// Evaluate runs req through the default kernel.
func Evaluate(req Request, token *consent.Token) Decision {
	return defaultKernel.Evaluate(req, token)
}

// Evaluate decides req against token. It never fails: every call returns a
// decision with one fresh audit event.
func (k *Kernel) Evaluate(req Request, token *consent.Token) Decision {
	e := evaluation{
		req:    req,
		token:  token,
		from:   domain.NormalizeScope(req.FromScope),
		target: domain.NormalizeScope(req.TargetScope),
	}

	if reason, denied := firstDenial(e); denied {
		return Decision{
			Allowed: false,
			Reason:  reason,
			Audit:   k.stamper.Event(audit.DecisionDeny, req.Purpose, e.target, req.ContextID, reason),
		}
	}

	return Decision{
		Allowed: true,
		Audit:   k.stamper.Event(audit.DecisionAllow, req.Purpose, e.target, req.ContextID, ""),
	}
}
