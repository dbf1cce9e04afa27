// Command spanctl runs span operations over its argument text.
//
//	spanctl [flags] take N <input>
//	spanctl [flags] drop N <input>
//	spanctl [flags] sub BEGIN END <input>
//	spanctl [flags] equal <input> <other>
//	spanctl [flags] overlap A0 A1 B0 B1 <input>
//	spanctl [flags] uint64 <input>
package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"
	"runtime/pprof"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/rawbytedev/azspan/internal/config"
	"github.com/rawbytedev/azspan/internal/logging"
	"github.com/rawbytedev/azspan/pkg/span"
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("spanctl", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: spanctl [flags] <take|drop|sub|equal|overlap|uint64> [args] <input>")
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "TOML config file")
	ignoreCase := fs.Bool("ignore-case", false, "compare ASCII letters case-insensitively in equal")
	logLevel := fs.String("log-level", "", "debug, info, warn or error")
	logFormat := fs.String("log-format", "", "text or json")
	memProfile := fs.String("mem-profile", "", "write a heap profile to this file")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if fs.Changed("ignore-case") {
		cfg.IgnoreCase = *ignoreCase
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = *logLevel
	}
	if fs.Changed("log-format") {
		cfg.LogFormat = *logFormat
	}
	if fs.Changed("mem-profile") {
		cfg.MemProfile = *memProfile
	}
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	lc := cfg.Logging()
	logging.ApplyEnv(&lc)
	logger := logging.New(stderr, lc)
	if cfg.MemProfile != "" {
		runtime.MemProfileRate = 1
	}

	out, err := execute(fs.Args(), cfg.IgnoreCase)
	if err != nil {
		logger.Error("spanctl failed", "args", fs.Args(), "error", err)
		if errors.Is(err, errUsage) {
			fs.Usage()
			return 2
		}
		return 1
	}
	logger.Debug("spanctl done", "args", fs.Args(), "result", out)
	fmt.Fprintln(stdout, out)

	if cfg.MemProfile != "" {
		if err := writeHeapProfile(cfg.MemProfile); err != nil {
			logger.Error("heap profile failed", "path", cfg.MemProfile, "error", err)
			return 1
		}
	}
	return 0
}

// execute runs one operation. Input text is viewed in place; only the
// final result is copied out for printing.
func execute(args []string, ignoreCase bool) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("%w: missing operation", errUsage)
	}
	op, args := args[0], args[1:]
	switch op {
	case "take", "drop":
		if len(args) != 2 {
			return "", fmt.Errorf("%w: %s N <input>", errUsage, op)
		}
		n, err := count(args[0])
		if err != nil {
			return "", err
		}
		s := span.FromString(args[1])
		if op == "take" {
			return s.Take(n).String(), nil
		}
		return s.Drop(n).String(), nil
	case "sub":
		if len(args) != 3 {
			return "", fmt.Errorf("%w: sub BEGIN END <input>", errUsage)
		}
		idx, err := counts(args[:2])
		if err != nil {
			return "", err
		}
		return span.FromString(args[2]).Sub(idx[0], idx[1]).String(), nil
	case "equal":
		if len(args) != 2 {
			return "", fmt.Errorf("%w: equal <input> <other>", errUsage)
		}
		a, b := span.FromString(args[0]), span.FromString(args[1])
		if ignoreCase {
			return strconv.FormatBool(a.EqualIgnoringCase(b)), nil
		}
		return strconv.FormatBool(a.Equal(b)), nil
	case "overlap":
		if len(args) != 5 {
			return "", fmt.Errorf("%w: overlap A0 A1 B0 B1 <input>", errUsage)
		}
		idx, err := counts(args[:4])
		if err != nil {
			return "", err
		}
		s := span.FromString(args[4])
		return strconv.FormatBool(s.Sub(idx[0], idx[1]).Overlaps(s.Sub(idx[2], idx[3]))), nil
	case "uint64":
		if len(args) != 1 {
			return "", fmt.Errorf("%w: uint64 <input>", errUsage)
		}
		v, err := span.FromString(args[0]).ToUint64()
		if err != nil {
			return "", fmt.Errorf("uint64 %q: %w", args[0], err)
		}
		return strconv.FormatUint(v, 10), nil
	default:
		return "", fmt.Errorf("%w: unknown operation %q", errUsage, op)
	}
}

// count parses a decimal count. Values past math.MaxInt clamp, matching the
// clamping of the span operations they feed.
func count(arg string) (int, error) {
	v, err := span.FromString(arg).ToUint64()
	switch {
	case errors.Is(err, span.ErrOverflow):
		return math.MaxInt, nil
	case err != nil:
		return 0, fmt.Errorf("%w: count %q: %w", errUsage, arg, err)
	case v > math.MaxInt:
		return math.MaxInt, nil
	}
	return int(v), nil
}

func counts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		n, err := count(a)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func writeHeapProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return pprof.WriteHeapProfile(f)
}
