package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagVerbose    = flag.Bool("verbose", false, "Verbose report output")
	flagNoValidate = flag.Bool("no-validate", false, "Skip index validation after decode")
	flagMaxListed  = flag.Int("n", -1, "Cap per-item detail lines (0 = all)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagVerbose {
		cfg.Output.Verbose = true
	}
	if *flagNoValidate {
		cfg.Decode.ValidateIndices = false
	}
	if *flagMaxListed >= 0 {
		cfg.Output.MaxListed = *flagMaxListed
	}
}
