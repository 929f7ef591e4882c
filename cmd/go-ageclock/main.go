package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-ageclock/internal/config"
	"github.com/tartampluch/go-ageclock/internal/engine"
	"github.com/tartampluch/go-ageclock/internal/render"
	"github.com/tartampluch/go-ageclock/internal/server"
)

var (
	// Global flags
	debugMode bool
	langFlag  string

	// calc / ical flags
	birthFlag string
	refFlag   string
	vcardPath string
	vcardURL  string
	vcardUser string
	vcardPass string
	jsonOut   bool
	outPath   string

	// serve flags
	portFlag string

	clock engine.Clock = engine.RealClock{}
)

var rootCmd = &cobra.Command{
	Use:           config.BinaryName,
	Short:         config.AppName + " - elapsed-time statistics from a birth date",
	Long:          config.AppName + ` computes calendar age, raw elapsed totals, the next-birthday countdown and progress toward fixed numeric milestones, from a birth date and an optional reference date.`,
	Version:       config.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(debugMode)
		logStartupInfo()
	},
}

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate and print an age snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := resolveProfile(cmd.Context())
		if err != nil {
			return err
		}

		snap, err := calculate(profile)
		if err != nil {
			return err
		}

		if jsonOut {
			return writeOutput(func(w io.Writer) error {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(snap)
			})
		}

		r := render.New(langFlag)
		return writeOutput(func(w io.Writer) error {
			_, err := io.WriteString(w, r.FormatSnapshot(snap))
			return err
		})
	},
}

var icalCmd = &cobra.Command{
	Use:   "ical",
	Short: "Export the next birthday and upcoming milestones as an iCalendar feed",
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := resolveProfile(cmd.Context())
		if err != nil {
			return err
		}

		snap, err := calculate(profile)
		if err != nil {
			return err
		}

		ref, err := referenceDate()
		if err != nil {
			return err
		}

		data, err := engine.BuildCalendar(profile.Name, snap, ref)
		if err != nil {
			return err
		}

		return writeOutput(func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		})
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server exposing the snapshot and calendar endpoints",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validatePort(portFlag); err != nil {
			return err
		}
		return server.New(portFlag, clock).Start(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, config.FlagDebug, false, config.FlagDescDebug)
	rootCmd.PersistentFlags().StringVar(&langFlag, config.FlagLang, config.DefaultLanguage, config.FlagDescLang)
	rootCmd.SetVersionTemplate(fmt.Sprintf(config.MsgVersionOutput,
		config.AppName, config.Version, runtime.GOOS, runtime.GOARCH))

	for _, cmd := range []*cobra.Command{calcCmd, icalCmd} {
		cmd.Flags().StringVar(&birthFlag, config.FlagBirth, "", config.FlagDescBirth)
		cmd.Flags().StringVar(&refFlag, config.FlagRef, "", config.FlagDescRef)
		cmd.Flags().StringVar(&vcardPath, config.FlagVCard, "", config.FlagDescVCard)
		cmd.Flags().StringVar(&vcardURL, config.FlagVCardURL, "", config.FlagDescVCardURL)
		cmd.Flags().StringVar(&vcardUser, config.FlagVCardUser, "", config.FlagDescVCardUser)
		cmd.Flags().StringVar(&vcardPass, config.FlagVCardPass, "", config.FlagDescVCardPass)
		cmd.Flags().StringVar(&outPath, config.FlagOutput, "", config.FlagDescOutput)
	}
	calcCmd.Flags().BoolVar(&jsonOut, config.FlagJSON, false, config.FlagDescJSON)

	serveCmd.Flags().StringVar(&portFlag, config.FlagPort, config.DefaultPort, config.FlagDescPort)

	rootCmd.AddCommand(calcCmd, icalCmd, serveCmd)
}

// main is the application entry point.
// It delegates execution to runMain to ensure that deferred function calls
// (like closing log files) are executed before the process terminates.
// os.Exit() does not run defers, so we must return an integer code first.
func main() {
	os.Exit(runMain())
}

// runMain manages the application lifecycle, command execution, and exit codes.
func runMain() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	defer func() {
		if pendingLogCloser != nil {
			_ = pendingLogCloser.Close() // Best effort close
		}
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		fmt.Fprintln(os.Stderr, err)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// resolveProfile derives the subject from the flags: an explicit --birth
// date, a local vCard file, or a remote vCard URL. Exactly one source must
// be supplied.
func resolveProfile(ctx context.Context) (*engine.Profile, error) {
	sources := 0
	for _, v := range []string{birthFlag, vcardPath, vcardURL} {
		if v != "" {
			sources++
		}
	}
	if sources == 0 {
		return nil, errors.New(config.ErrBirthRequired)
	}
	if sources > 1 {
		return nil, errors.New(config.ErrSourceConflict)
	}

	switch {
	case birthFlag != "":
		birth, err := engine.ParseDate(birthFlag)
		if err != nil {
			return nil, err
		}
		return &engine.Profile{Name: config.FallbackName, BirthDate: birth}, nil

	case vcardPath != "":
		f, err := os.Open(vcardPath)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		return engine.ProfileFromVCard(ctx, f)

	default:
		rc, err := engine.NewHTTPFetcher().Fetch(ctx, vcardURL, vcardUser, vcardPass)
		if err != nil {
			return nil, err
		}
		defer func() { _ = rc.Close() }()
		return engine.ProfileFromVCard(ctx, rc)
	}
}

// calculate runs the engine against the resolved profile and reference date.
func calculate(profile *engine.Profile) (*engine.AgeSnapshot, error) {
	ref, err := referenceDate()
	if err != nil {
		return nil, err
	}
	return engine.Calculate(profile.BirthDate, ref)
}

// referenceDate resolves --ref, defaulting to the clock's today.
func referenceDate() (time.Time, error) {
	if refFlag == "" {
		return clock.Now(), nil
	}
	return engine.ParseDate(refFlag)
}

// writeOutput routes command output to --output or stdout.
func writeOutput(write func(io.Writer) error) error {
	if outPath == "" {
		return write(os.Stdout)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrWriteOutput, err)
	}
	defer func() { _ = f.Close() }()

	return write(f)
}

// validatePort enforces the numeric port range.
func validatePort(port string) error {
	if port == "" {
		return errors.New(config.ErrPortRequired)
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < config.MinPort || n > config.MaxPort {
		return errors.New(config.ErrPortRange)
	}
	return nil
}

// pendingLogCloser holds the log file opened by setupLogging so runMain can
// close it on the way out.
var pendingLogCloser io.Closer

// setupLogging configures the default slog logger: stdout always, plus a
// file in the user's cache directory when available.
func setupLogging(debug bool) {
	var writers []io.Writer

	writers = append(writers, os.Stdout)

	if logPath, err := getLogFilePath(); err == nil {
		// O_TRUNC resets logs on restart to prevent indefinite growth.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			pendingLogCloser = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	}

	logger := slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), opts))
	slog.SetDefault(logger)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)

	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}
