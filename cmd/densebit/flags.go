package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hupe1980/densebit"
)

const (
	envPrefix = "densebit"

	ValueKey     = "value"
	RadixKey     = "radix"
	OutRadixKey  = "out-radix"
	SetKey       = "set"
	ShlKey       = "shl"
	ShrKey       = "shr"
	RotlKey      = "rotl"
	RotrKey      = "rotr"
	NotKey       = "not"
	ReverseKey   = "reverse"
	SubsetPosKey = "subset-pos"
	SubsetLenKey = "subset-len"
	MaxBitsKey   = "max-bits"
	LogLevelKey  = "log-level"
	LogJSONKey   = "log-json"
)

func AddFlags(flags *pflag.FlagSet) {
	flags.String(ValueKey, "", "Digit string to parse, most significant digit first")
	flags.Int(RadixKey, 16, "Radix of --value (2, 4, 8, 16 or 32)")
	flags.Int(OutRadixKey, 2, "Radix of the printed result (2, 4, 8, 16 or 32)")
	flags.IntSlice(SetKey, nil, "Bit positions to set before any transformation")
	flags.Int(ShlKey, 0, "Shift towards higher positions, growing the length")
	flags.Int(ShrKey, 0, "Shift towards lower positions")
	flags.Int(RotlKey, 0, "Rotate towards higher positions")
	flags.Int(RotrKey, 0, "Rotate towards lower positions")
	flags.Bool(NotKey, false, "Invert every bit")
	flags.Bool(ReverseKey, false, "Reverse the bit order over the full word span")
	flags.Int(SubsetPosKey, 0, "Start of the slice to keep")
	flags.Int(SubsetLenKey, -1, "Length of the slice to keep, -1 keeps everything")
	flags.Int(MaxBitsKey, densebit.DefaultMaxBits, "Ceiling on the vector length in bits")
	flags.String(LogLevelKey, "warn", "Log level (debug, info, warn, error)")
	flags.Bool(LogJSONKey, false, "Emit logs as JSON")
}

// Config is the resolved command line. Each flag can also be set through a
// DENSEBIT_* environment variable, e.g. DENSEBIT_OUT_RADIX.
type Config struct {
	Value     string
	Radix     int
	OutRadix  int
	Set       []int
	Shl       int
	Shr       int
	Rotl      int
	Rotr      int
	Not       bool
	Reverse   bool
	SubsetPos int
	SubsetLen int
	MaxBits   int
	LogLevel  slog.Level
	LogJSON   bool
}

func ParseFlags(flags *pflag.FlagSet, args []string) (*Config, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}

	cfg := &Config{
		Value:     v.GetString(ValueKey),
		Radix:     v.GetInt(RadixKey),
		OutRadix:  v.GetInt(OutRadixKey),
		Set:       v.GetIntSlice(SetKey),
		Shl:       v.GetInt(ShlKey),
		Shr:       v.GetInt(ShrKey),
		Rotl:      v.GetInt(RotlKey),
		Rotr:      v.GetInt(RotrKey),
		Not:       v.GetBool(NotKey),
		Reverse:   v.GetBool(ReverseKey),
		SubsetPos: v.GetInt(SubsetPosKey),
		SubsetLen: v.GetInt(SubsetLenKey),
		MaxBits:   v.GetInt(MaxBitsKey),
		LogJSON:   v.GetBool(LogJSONKey),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString(LogLevelKey))); err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", LogLevelKey, err)
	}
	if cfg.Value == "" && flags.NArg() > 0 {
		cfg.Value = flags.Arg(0)
	}
	if cfg.Value == "" {
		return nil, fmt.Errorf("missing --%s", ValueKey)
	}
	if cfg.Shl < 0 || cfg.Shr < 0 {
		return nil, fmt.Errorf("shift amounts must not be negative")
	}
	return cfg, nil
}
