package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pranshuparmar/conndiag/internal/config"
	"github.com/pranshuparmar/conndiag/internal/connect"
	"github.com/pranshuparmar/conndiag/internal/diagnose"
	"github.com/pranshuparmar/conndiag/internal/logging"
	"github.com/pranshuparmar/conndiag/internal/output"
	"github.com/pranshuparmar/conndiag/internal/pipeline"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

const (
	exitOK         = 0
	exitFailed     = 1
	exitUsageError = 2
)

// exitError carries a process exit status out of RunE without printing.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// SetVersionBuildCommitString records the ldflags-injected build metadata.
func SetVersionBuildCommitString(v, c, d string) {
	if v != "" {
		version = v
	}
	if c != "" {
		commit = c
	}
	if d != "" {
		buildDate = d
	}
}

func versionString() string {
	return fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildDate)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	v := config.NewViper()

	cmd := &cobra.Command{
		Use:   "conndiag <destination> <port>",
		Short: "Attempt one TCP connection and explain why it failed",
		Long: `conndiag makes a single TCP connection attempt to destination:port.

On success it prints the addresses that were connected. On failure it
classifies the error (refused, timed out, host not found, or unknown) and
prints what it most likely means and what to check next.

A failed connection still exits 0 unless --exit-code is given.`,
		Example: `  conndiag example.com 443
  conndiag 10.0.0.12 5432 --timeout 3s
  conndiag db.internal 5432 --output json --exit-code`,
		Version:       versionString(),
		Args:          validateArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return errors.Wrap(err, "binding flags")
			}
			return runConnect(cmd, v, args, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.Duration(config.KeyTimeout, 0, "connect timeout (0 uses the operating system default)")
	f.StringP(config.KeyOutput, "o", output.FormatText, "output format: text or json")
	f.Bool(config.KeyNoColor, false, "disable coloured output")
	f.BoolP(config.KeyInteractive, "i", false, "show a spinner while connecting (terminal only)")
	f.Bool(config.KeyExitCode, false, "exit with status 1 when the connection fails")
	f.String(config.KeyLogLevel, "warn", "log level on stderr: debug, info, warn, error")
	f.String(config.KeyLogFormat, "text", "log format: text or json")

	return cmd
}

func runConnect(cmd *cobra.Command, v *viper.Viper, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	log, err := logging.New(stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	target, err := ParseTarget(args[0], args[1])
	if err != nil {
		return err
	}

	tty := isTerminal(stdout)
	renderer, err := output.New(cfg.Output, stdout, tty && !cfg.NoColor && os.Getenv("NO_COLOR") == "")
	if err != nil {
		return err
	}

	runCfg := pipeline.RunConfig{
		Target:     target,
		Dialer:     connect.NewDialer(cfg.Timeout),
		Classifier: diagnose.Default(),
		Renderer:   renderer,
		Log:        log,
	}
	if cfg.Interactive {
		if tty && cfg.Output == output.FormatText {
			runCfg.SpinnerOut = stdout
		} else {
			log.Debug("spinner disabled: stdout is not a terminal or output is not text")
		}
	}

	outcome, err := pipeline.Run(cmd.Context(), runCfg)
	if err != nil {
		return err
	}
	if !outcome.Connected() && cfg.ExitCode {
		return &exitError{code: exitFailed}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	fmt.Fprintln(stderr, "Error:", err)
	return exitUsageError
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
