package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"actionkernel/internal/kernel"
	"actionkernel/internal/platform/httpserver"
	platformmetrics "actionkernel/internal/platform/metrics"
	"actionkernel/pkg/requestcontext"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var flags routeFlags
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Route one transcript per stdin line while serving /metrics and /healthz",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, req, err := flags.request(cmd.Context(), a.catalog)
			if err != nil {
				return err
			}
			return a.serve(ctx, req)
		},
	}
	flags.register(cmd)
	return cmd
}

// serve runs until stdin closes or ctx is cancelled, then shuts the ops
// server down gracefully.
func (a *app) serve(ctx context.Context, req kernel.RouteRequest) error {
	srv := httpserver.New(a.cfg.MetricsAddr, httpserver.NewOpsRouter(platformmetrics.Handler(a.registry)))
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.InfoContext(gctx, "ops server listening", "addr", a.cfg.MetricsAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, done := context.WithTimeout(context.Background(), shutdownTimeout)
		defer done()
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		defer cancel()
		return a.routeLines(gctx, req)
	})
	return g.Wait()
}

func (a *app) routeLines(ctx context.Context, req kernel.RouteRequest) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(a.stdin)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	enc := json.NewEncoder(a.stdout)
	n := 0
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			n++
			lineCtx := requestcontext.WithRequestID(ctx, "line-"+strconv.Itoa(n))
			sug, err := a.service.RouteTranscript(lineCtx, line, req)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
			if err := enc.Encode(sug); err != nil {
				return err
			}
		}
	}
}
