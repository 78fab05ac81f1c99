// Package main provides the cleaner command that runs the full survey
// cleaning pipeline: load, normalize, standardize, write.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"surveyclean/internal/config"
	"surveyclean/internal/loader"
	"surveyclean/internal/logger"
	"surveyclean/internal/normalizer"
	"surveyclean/internal/writer"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (optional)")
	inputPath := flag.String("input", "", "Path to raw survey CSV (overrides config)")
	outputPath := flag.String("output", "", "Path to cleaned CSV (overrides config)")
	flag.Parse()

	cfg, err := resolveConfig(*configPath, *inputPath, *outputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Usage: cleaner -input <raw.csv> -output <clean.csv> [-config <config.yaml>]\n\n%v\n", err)
		flag.PrintDefaults()
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.Logging.Level)

	log.Info("🚀 Starting survey cleaning pipeline")
	log.Info(fmt.Sprintf("📍 Input: %s", cfg.Pipeline.Input))
	log.Info(fmt.Sprintf("🎯 Output: %s", cfg.Pipeline.Output))

	// Phase 1: Load
	startTime := time.Now()

	records, err := loader.NewLoader().Load(cfg.Pipeline.Input)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Load failed: %v", err))
		os.Exit(1)
	}

	log.Info(fmt.Sprintf("✅ Loaded %d rows in %v", len(records), time.Since(startTime)))

	// Phase 2: Clean
	cleanStart := time.Now()

	result := normalizer.NewProcessor(cfg.Salary).Process(records)

	log.Info(fmt.Sprintf("✅ Cleaned %d → %d rows in %v",
		len(records), len(result.Cleaned), time.Since(cleanStart)))

	logExclusions(log, result)

	// Phase 3: Write
	out, err := writer.NewCSVWriter(cfg.Pipeline.Output)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Output failed: %v", err))
		os.Exit(1)
	}

	if err := out.Write(result.Cleaned); err != nil {
		log.Error(fmt.Sprintf("❌ Write failed: %v", err))
		_ = out.Close()
		os.Exit(1)
	}

	if err := out.Close(); err != nil {
		log.Error(fmt.Sprintf("❌ Close failed: %v", err))
		os.Exit(1)
	}

	log.Info(fmt.Sprintf("✅ Saved to: %s", cfg.Pipeline.Output))
}

// resolveConfig layers defaults, the optional config file, .env/environment
// overrides, and finally the command-line flags.
func resolveConfig(configPath, inputPath, outputPath string) (*config.Config, error) {
	cfg := config.Default()

	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.ApplyEnv()

	if inputPath != "" {
		cfg.Pipeline.Input = inputPath
	}

	if outputPath != "" {
		cfg.Pipeline.Output = outputPath
	}

	if err := cfg.ValidatePaths(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func logExclusions(log *logger.Logger, result normalizer.Result) {
	if len(result.Excluded) == 0 {
		return
	}

	byReason := make(map[string]int)
	for _, ex := range result.Excluded {
		byReason[ex.Stage+": "+ex.Reason]++
	}

	excl := log.With("dropped", len(result.Excluded))
	for reason, n := range byReason {
		excl.Info(fmt.Sprintf("ℹ️  %d dropped (%s)", n, reason))
	}
}
