//go:build property
// +build property

package audit_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"actionkernel/internal/audit"
	"actionkernel/pkg/domain"
)

// TestReportSummaryCoversAllEvents verifies the report summary partitions.
// Property: Allowed + Denied == len(events), Allowed == count(allow)
func TestReportSummaryCoversAllEvents(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("summary counts sum to event count", prop.ForAll(
		func(allows []bool) bool {
			events := make([]audit.Event, len(allows))
			want := 0
			for i, allow := range allows {
				d := audit.DecisionDeny
				if allow {
					d = audit.DecisionAllow
					want++
				}
				events[i] = audit.NewEvent(d, domain.ConsentPurposeExecution, domain.ScopeEphemeral, "", "")
			}

			r := audit.NewReport(events)
			return r.Summary.Allowed+r.Summary.Denied == len(events) && r.Summary.Allowed == want
		},
		gen.SliceOf(gen.Bool()),
	))

	properties.TestingRun(t)
}
