package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/wippyai/mp-runtime/config"
	"github.com/wippyai/mp-runtime/engine"
	"github.com/wippyai/mp-runtime/locale"
	"github.com/wippyai/mp-runtime/mpint"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to TOML configuration file")
		locales     = flag.Int("locales", 0, "Number of locales (overrides config)")
		expr        = flag.String("e", "", "Commands to evaluate, separated by ';'")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if err := run(*configPath, *locales, *expr, *interactive); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, locales int, expr string, interactive bool) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if locales > 0 {
		cfg.Locales = locales
	}

	logger, err := cfg.BuildLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()
	locale.SetLogger(logger)
	engine.SetLogger(logger)
	mpint.SetTrustCasts(cfg.TrustCasts)

	rt, err := locale.New(locale.Options{Locales: cfg.Locales})
	if err != nil {
		return err
	}
	defer rt.Close()

	s := newSession(rt)
	defer s.close()

	if expr != "" {
		for _, line := range strings.Split(expr, ";") {
			out, err := s.eval(line)
			if err != nil {
				return err
			}
			if out != "" {
				fmt.Println(out)
			}
		}
		return nil
	}

	if interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("interactive mode needs a terminal")
		}
		return runInteractive(s)
	}

	// Batch mode: one command per stdin line, errors reported per line.
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		out, err := s.eval(scanner.Text())
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		if out != "" {
			fmt.Println(out)
		}
	}
	return scanner.Err()
}
