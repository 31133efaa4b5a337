// Command spatial evaluates a vector math script and prints its result.
//
//	spatial [-config spatial.yaml] [-timeout 2s] [-v] [script.lisp]
//
// With no script argument the script is read from stdin.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/chazu/spatial/pkg/config"
	"github.com/chazu/spatial/pkg/engine"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("spatial", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML config file")
	timeout := fs.Duration("timeout", 0, "evaluation timeout (overrides config)")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
	}
	if *timeout > 0 {
		cfg.EvalTimeout = *timeout
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}

	log, err := cfg.Logger()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	defer log.Sync()

	source, name, err := readScript(fs.Args(), stdin)
	if err != nil {
		log.Error("read script", zap.Error(err))
		return 2
	}

	eng := engine.NewEngine(
		engine.WithTimeout(cfg.EvalTimeout),
		engine.WithMeshCells(cfg.MeshCells),
		engine.WithLogger(log.Named("engine")),
	)

	res, evalErrs, err := eng.Evaluate(source)
	if err != nil {
		log.Error("evaluation failed", zap.String("script", name), zap.Error(err))
		return 1
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			fmt.Fprintf(stderr, "%s: %s\n", name, e)
		}
		return 1
	}

	if res.Text != "" {
		fmt.Fprintln(stdout, res.Text)
	}
	return 0
}

func readScript(args []string, stdin io.Reader) (source, name string, err error) {
	switch len(args) {
	case 0:
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), "<stdin>", nil
	case 1:
		b, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("read script: %w", err)
		}
		return string(b), args[0], nil
	}
	return "", "", fmt.Errorf("expected at most one script, got %d", len(args))
}
