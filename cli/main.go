package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/abacus-labs/abacus"
	"github.com/abacus-labs/abacus/core/config"
	"github.com/abacus-labs/abacus/pkg/logging"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "expected 'eval' or 'repl' subcommands")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "eval":
		evalCmd := flag.NewFlagSet("eval", flag.ExitOnError)
		configFile := evalCmd.String("config", "", "Path to the YAML configuration file.")
		logLevel := evalCmd.String("log-level", "", "Log level (debug, info, warn, error); overrides the config file")
		logFormat := evalCmd.String("log-format", "", "Log format (console, json); overrides the config file")
		_ = evalCmd.Parse(os.Args[2:])

		session := newSession(*configFile, *logLevel, *logFormat)
		if err := runEval(session, evalCmd.Args(), os.Stdout); err != nil {
			logging.GetLogger().Error("Evaluation failed", "error", err)
			os.Exit(1)
		}

	case "repl":
		replCmd := flag.NewFlagSet("repl", flag.ExitOnError)
		configFile := replCmd.String("config", "", "Path to the YAML configuration file.")
		logLevel := replCmd.String("log-level", "", "Log level (debug, info, warn, error); overrides the config file")
		logFormat := replCmd.String("log-format", "", "Log format (console, json); overrides the config file")
		_ = replCmd.Parse(os.Args[2:])

		session := newSession(*configFile, *logLevel, *logFormat)
		if err := runREPL(session, os.Stdin, os.Stdout); err != nil {
			logging.GetLogger().Error("Reading input failed", "error", err)
			os.Exit(1)
		}

	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q, expected 'eval' or 'repl'\n", os.Args[1])
		os.Exit(1)
	}
}

// newSession loads the configuration, initializes logging and builds the
// session, exiting on failure.
func newSession(configFile, logLevel, logFormat string) *abacus.Session {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		cfg, err = config.LoadFileConfig(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}

	// Logs go to stderr so stdout carries only calculator output.
	logging.InitLogger(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)
	logger := logging.GetLogger()

	session, err := abacus.NewSession(cfg, logger)
	if err != nil {
		logger.Error("Failed to create session", "error", err)
		os.Exit(1)
	}
	return session
}

// runEval applies every token and prints the final display and the history.
func runEval(session *abacus.Session, tokens []string, out io.Writer) error {
	if err := session.PressAll(tokens...); err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "DISPLAY\t%s\n", session.Display())
	fmt.Fprintf(w, "MODE\t%s\n", session.Mode())
	for i, entry := range session.History() {
		fmt.Fprintf(w, "HISTORY %d\t%s\n", i+1, entry)
	}
	return w.Flush()
}

// runREPL reads whitespace separated tokens line by line. After each line it
// prints the display and the last history entry. Rejected tokens are reported
// and the rest of the line is skipped.
func runREPL(session *abacus.Session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		if err := session.PressAll(strings.Fields(line)...); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
		if entry, ok := session.LastHistoryEntry(); ok {
			fmt.Fprintf(out, "%s\t[%s]\n", session.Display(), entry)
		} else {
			fmt.Fprintln(out, session.Display())
		}
	}
	return scanner.Err()
}
