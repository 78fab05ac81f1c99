// Package main provides the report command: it runs the cleaning pipeline
// over a raw survey CSV and prints value counts and salary statistics for
// the cleaned table.
package main

import (
	"flag"
	"fmt"
	"os"

	"surveyclean/internal/config"
	"surveyclean/internal/loader"
	"surveyclean/internal/normalizer"
	"surveyclean/internal/report"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (optional)")
	inputPath := flag.String("input", "", "Path to raw survey CSV")
	flag.Parse()

	cfg := config.Default()

	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	cfg.ApplyEnv()

	if *inputPath != "" {
		cfg.Pipeline.Input = *inputPath
	}

	if cfg.Pipeline.Input == "" {
		fmt.Println("Usage: report -input <raw.csv> [-config <config.yaml>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	records, err := loader.NewLoader().Load(cfg.Pipeline.Input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading input: %v\n", err)
		os.Exit(1)
	}

	result := normalizer.NewProcessor(cfg.Salary).Process(records)

	fmt.Print(report.Summarize(result.Cleaned).Render())
}
