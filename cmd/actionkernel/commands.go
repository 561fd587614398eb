package main

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"actionkernel/internal/consent"
	"actionkernel/internal/device"
	"actionkernel/internal/interaction"
	"actionkernel/internal/kernel"
	"actionkernel/internal/routing"
	"actionkernel/pkg/domain"
	dErrors "actionkernel/pkg/domain-errors"
	"actionkernel/pkg/requestcontext"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <transcript>",
		Short: "Classify a transcript into a voice command",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.writeJSON(a.service.Parse(strings.Join(args, " ")))
		},
	}
}

// routeFlags are shared by route and serve.
type routeFlags struct {
	tokenPath  string
	deviceType string
	userAgent  string
	from       string
	target     string
	contextID  string
	optIn      bool
}

func (f *routeFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.tokenPath, "token", "", "consent token JSON file (none means no consent)")
	flags.StringVar(&f.deviceType, "device", "", "device type from the catalog: phone, tablet, desktop")
	flags.StringVar(&f.userAgent, "user-agent", "", "detect the device from a User-Agent instead of --device")
	flags.StringVar(&f.from, "from", "", "source data scope")
	flags.StringVar(&f.target, "target", "", "target data scope")
	flags.StringVar(&f.contextID, "context", "", "execution context override: web, proxy, local, emulator")
	flags.BoolVar(&f.optIn, "opt-in", false, "grant persistent-scope opt-in")
	cmd.MarkFlagsMutuallyExclusive("device", "user-agent")
}

// request resolves the flags into a routing request. A User-Agent is carried
// on the context for the service to detect from.
func (f *routeFlags) request(ctx context.Context, catalog *device.Catalog) (context.Context, kernel.RouteRequest, error) {
	var req kernel.RouteRequest

	from, err := domain.ParseDataScope(f.from)
	if err != nil {
		return ctx, req, err
	}
	target, err := domain.ParseDataScope(f.target)
	if err != nil {
		return ctx, req, err
	}
	contextID, err := domain.ParseExecutionContextID(f.contextID)
	if err != nil {
		return ctx, req, err
	}
	req.Options = routing.Options{
		FromScope:       from,
		TargetScope:     target,
		ContextID:       contextID,
		PersistentOptIn: f.optIn,
	}

	if f.tokenPath != "" {
		if req.Options.ConsentToken, err = readToken(f.tokenPath); err != nil {
			return ctx, req, err
		}
	}

	switch {
	case f.deviceType != "":
		t, err := device.ParseType(f.deviceType)
		if err != nil {
			return ctx, req, err
		}
		if t != device.TypeUnknown {
			if req.Profile, err = catalog.Lookup(t); err != nil {
				return ctx, req, dErrors.Wrap(err, dErrors.CodeNotFound, "device profile not in catalog")
			}
		}
	case f.userAgent != "":
		ctx = requestcontext.WithUserAgent(ctx, f.userAgent)
	}
	return ctx, req, nil
}

func readToken(path string) (*consent.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeNotFound, "open consent token")
	}
	defer f.Close()
	return consent.DecodeToken(f)
}

func newRouteCmd(a *app) *cobra.Command {
	var flags routeFlags
	cmd := &cobra.Command{
		Use:   "route <transcript> [alternative...]",
		Short: "Classify and route a transcript; extra arguments are n-best alternatives",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, req, err := flags.request(cmd.Context(), a.catalog)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				sug, err := a.service.RouteTranscript(ctx, args[0], req)
				if err != nil {
					return err
				}
				return a.writeJSON(sug)
			}
			sugs, err := a.service.RouteBatch(ctx, args, req)
			if err != nil {
				return err
			}
			return a.writeJSON(sugs)
		},
	}
	flags.register(cmd)
	return cmd
}

func newSuggestCmd(a *app) *cobra.Command {
	var (
		scope      string
		confidence float64
		ictx       interaction.Context
	)
	cmd := &cobra.Command{
		Use:   "suggest <chat|search> <text>",
		Short: "Rank optional chat or search actions for an input",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := interaction.ParseCategory(args[0])
			if err != nil {
				return err
			}
			if ictx.PrivacyScope, err = domain.ParseDataScope(scope); err != nil {
				return err
			}
			if cmd.Flags().Changed("session-confidence") {
				ictx = ictx.WithSessionConfidence(confidence)
			}
			out, err := a.service.Suggest(cmd.Context(), category, strings.Join(args[1:], " "), ictx)
			if err != nil {
				return err
			}
			return a.writeJSON(out)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&scope, "scope", "", "privacy scope of the session")
	flags.Float64Var(&confidence, "session-confidence", 0, "prior session confidence; sets the threshold")
	flags.BoolVar(&ictx.VoiceAvailable, "voice", false, "voice input is available")
	flags.BoolVar(&ictx.ScreenAvailable, "screen", false, "screen context is available")
	flags.StringSliceVar(&ictx.IntentHints, "hint", nil, "intent hints, e.g. summary")
	flags.StringVar(&ictx.ActiveWorkspaceID, "workspace", "", "active workspace ID")
	return cmd
}
