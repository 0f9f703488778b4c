// Command densebit parses a digit string into a bit vector, applies a
// pipeline of transformations and prints the result.
//
// The pipeline runs in a fixed order: set, shl, shr, rotl, rotr, not,
// reverse, subset.
//
//	densebit --value deadbeef --radix 16 --rotl 8 --out-radix 16
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/hupe1980/densebit"
)

func main() {
	flags := pflag.NewFlagSet("densebit", pflag.ContinueOnError)
	AddFlags(flags)

	cfg, err := ParseFlags(flags, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "densebit: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg, os.Stdout, newLogger(cfg, os.Stderr)); err != nil {
		fmt.Fprintf(os.Stderr, "densebit: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(cfg *Config, w io.Writer) *densebit.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogJSON {
		return densebit.NewLogger(slog.NewJSONHandler(w, opts))
	}
	return densebit.NewLogger(slog.NewTextHandler(w, opts))
}

func run(cfg *Config, w io.Writer, logger *densebit.Logger) error {
	v, err := densebit.Parse(cfg.Value, cfg.Radix,
		densebit.WithMaxBits(cfg.MaxBits),
		densebit.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	for _, pos := range cfg.Set {
		if err := v.SetBit(pos, true); err != nil {
			return fmt.Errorf("set bit %d: %w", pos, err)
		}
	}
	if cfg.Shl > 0 {
		if v, err = v.ShiftLeft(cfg.Shl); err != nil {
			return err
		}
	}
	if cfg.Shr > 0 {
		v = v.ShiftRight(cfg.Shr)
	}
	if cfg.Rotl != 0 {
		v = v.RotateLeft(cfg.Rotl)
	}
	if cfg.Rotr != 0 {
		v = v.RotateRight(cfg.Rotr)
	}
	if cfg.Not {
		v = v.Not()
	}
	if cfg.Reverse {
		v = v.Reverse()
	}
	if cfg.SubsetPos != 0 || cfg.SubsetLen >= 0 {
		length := cfg.SubsetLen
		if length < 0 {
			length = max(v.Len()-cfg.SubsetPos, 0)
		}
		if v, err = v.Subset(cfg.SubsetPos, length); err != nil {
			return err
		}
	}

	out, err := v.Format(cfg.OutRadix)
	if err != nil {
		return err
	}

	logger.Info("pipeline completed", "size", v.Len(), "out_radix", cfg.OutRadix)

	fmt.Fprintf(w, "value:     %s\n", out)
	fmt.Fprintf(w, "size:      %d\n", v.Len())
	fmt.Fprintf(w, "weight:    %d\n", v.Weight())
	fmt.Fprintf(w, "first_set: %d\n", v.FirstSet())
	return nil
}
