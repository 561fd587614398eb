package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"actionkernel/internal/device"
	"actionkernel/internal/kernel"
	kmetrics "actionkernel/internal/kernel/metrics"
	"actionkernel/internal/kernel/sink"
	"actionkernel/internal/platform/config"
	"actionkernel/internal/platform/logger"
	platformmetrics "actionkernel/internal/platform/metrics"
	dErrors "actionkernel/pkg/domain-errors"
)

// app holds what every subcommand shares. It is built once in
// PersistentPreRunE after flags are parsed.
type app struct {
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	cfg      config.Server
	logger   *slog.Logger
	registry *prometheus.Registry
	catalog  *device.Catalog
	service  *kernel.Service
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr, cfg: config.FromEnv()}

	root := &cobra.Command{
		Use:           "actionkernel",
		Short:         "Privacy-gated action routing kernel",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.init()
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level: debug, info, warn, error")
	flags.StringVar(&a.cfg.LogFormat, "log-format", a.cfg.LogFormat, "log format: json or text")
	flags.StringVar(&a.cfg.DeviceCatalog, "device-catalog", a.cfg.DeviceCatalog, "YAML device catalog (default: embedded)")
	flags.IntVar(&a.cfg.BatchConcurrency, "concurrency", a.cfg.BatchConcurrency, "parallelism for n-best routing")
	flags.StringVar(&a.cfg.MetricsAddr, "metrics-addr", a.cfg.MetricsAddr, "listen address for /metrics and /healthz (serve only)")

	root.AddCommand(
		newParseCmd(a),
		newRouteCmd(a),
		newSuggestCmd(a),
		newServeCmd(a),
	)
	return root
}

func (a *app) init() error {
	log, err := logger.New(a.stderr, a.cfg.LogLevel, a.cfg.LogFormat)
	if err != nil {
		return err
	}
	a.logger = log

	if a.cfg.DeviceCatalog == "" {
		a.catalog, err = device.DefaultCatalog()
	} else {
		a.catalog, err = loadCatalogFile(a.cfg.DeviceCatalog)
	}
	if err != nil {
		return err
	}

	a.registry = platformmetrics.NewRegistry()
	a.service = kernel.New(
		kernel.WithLogger(a.logger),
		kernel.WithMetrics(kmetrics.NewWithRegisterer(a.registry)),
		kernel.WithAuditSink(sink.NewGuarded(sink.NewLogSink(a.logger))),
		kernel.WithCatalog(a.catalog),
		kernel.WithBatchConcurrency(a.cfg.BatchConcurrency),
	)
	return nil
}

func loadCatalogFile(path string) (*device.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeNotFound, "open device catalog")
	}
	defer f.Close()
	return device.LoadCatalog(f)
}

func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
