package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"solverdesk/cmd"
	"solverdesk/internal/pkg/logging"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

type serveFlags struct {
	envFile        string
	debug          bool
	port           string
	logLevel       string
	logFormat      string
	roster         string
	capacity       int
	reportSchedule string
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		log.Fatalf("solverdesk: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "solverdesk",
		Short:        "Homework desk assigning paid orders to solvers",
		SilenceUsage: true,
	}

	root.AddCommand(newServeCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var flags serveFlags
	defaults := cmd.DefaultConfig()

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and background jobs",
		Long: `Start the desk. Configuration comes from the environment (optionally a .env
file) and the flags below, flags winning:

  HTTP_PORT, LOG_LEVEL, LOG_FORMAT, SOLVER_ROSTER, SOLVER_CAPACITY, REPORT_SCHEDULE`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := cmd.LoadConfig(flags.envFile)
			if err != nil {
				return err
			}
			applyFlags(c, flags, &cfg)
			if err = cfg.Validate(); err != nil {
				return err
			}
			return serveDesk(c.Context(), cfg)
		},
	}

	f := serve.Flags()
	f.StringVar(&flags.envFile, "env-file", ".env", "Optional dotenv file")
	f.BoolVar(&flags.debug, "debug", false, "Shorthand for --log-level=debug")
	f.StringVar(&flags.port, "port", defaults.HTTPPort, "HTTP port (HTTP_PORT)")
	f.StringVar(&flags.logLevel, "log-level", defaults.LogLevel, "Log level: debug, info, warn, error (LOG_LEVEL)")
	f.StringVar(&flags.logFormat, "log-format", defaults.LogFormat, "Log format: text, json (LOG_FORMAT)")
	f.StringVar(&flags.roster, "roster", "", "Solver roster YAML file (SOLVER_ROSTER)")
	f.IntVar(&flags.capacity, "capacity", defaults.SolverCapacity, "Default orders per solver (SOLVER_CAPACITY)")
	f.StringVar(&flags.reportSchedule, "report-schedule", defaults.ReportSchedule, "Board report cron spec (REPORT_SCHEDULE)")

	return serve
}

func applyFlags(c *cobra.Command, flags serveFlags, cfg *cmd.Config) {
	f := c.Flags()
	if f.Changed("port") {
		cfg.HTTPPort = flags.port
	}
	if f.Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if flags.debug {
		cfg.LogLevel = "debug"
	}
	if f.Changed("log-format") {
		cfg.LogFormat = flags.logFormat
	}
	if f.Changed("roster") {
		cfg.SolverRoster = flags.roster
	}
	if f.Changed("capacity") {
		cfg.SolverCapacity = flags.capacity
	}
	if f.Changed("report-schedule") {
		cfg.ReportSchedule = flags.reportSchedule
	}
}

func serveDesk(parent context.Context, cfg cmd.Config) error {
	logger := logging.NewLogger(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	roster, err := cmd.LoadRoster(cfg.SolverRoster, cfg.SolverCapacity)
	if err != nil {
		return err
	}

	app, err := cmd.NewCompositionRoot(cfg, logger, roster)
	if err != nil {
		return fmt.Errorf("build desk: %w", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e := app.CreateHTTPRouter()

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", cfg.Addr(), "solvers", len(roster))
		serveErr <- e.Start(cfg.Addr())
	}()

	select {
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
