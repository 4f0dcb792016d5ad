package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"growdash/internal/analytics"
	"growdash/internal/dataset"
	"growdash/internal/exporter"
)

func main() {
	dataDir := flag.String("data", "data", "directory holding the environment CSVs and growth spreadsheet")
	outputDir := flag.String("out", "exports", "output directory for generated reports")
	mode := flag.String("mode", "all", "which reports to generate: environment, growth, summary, or all")
	flag.Parse()

	switch *mode {
	case "environment", "growth", "summary", "all":
	default:
		slog.Error("Unknown report mode", "mode", *mode)
		os.Exit(1)
	}

	ctx := context.Background()
	loader := dataset.NewLoader(slog.Default())

	slog.Info("Loading dataset", "data_dir", *dataDir)
	snap, err := loader.Load(ctx, *dataDir)
	if err != nil && (snap == nil || snap.Empty()) {
		slog.Error("Failed to load dataset", "error", err, "data_dir", *dataDir)
		os.Exit(1)
	}
	if err != nil {
		slog.Warn("Dataset loaded with warnings", "error", err)
	}

	slog.Info("Dataset loaded",
		"environment_rows", snap.EnvironmentRows(),
		"growth_rows", len(snap.Growth),
		"schools", snap.SchoolCount())

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		slog.Error("Failed to create output directory", "error", err)
		os.Exit(1)
	}

	var written []string

	if *mode == "environment" || *mode == "all" {
		path := filepath.Join(*outputDir, exporter.EnvironmentFileName)
		if err := writeReport(path, func(f *os.File) error {
			return exporter.WriteEnvironmentCSV(f, snap.EnvironmentAll())
		}); err != nil {
			slog.Error("Failed to write environment report", "error", err, "path", path)
			os.Exit(1)
		}
		written = append(written, path)
	}

	if *mode == "growth" || *mode == "all" {
		path := filepath.Join(*outputDir, exporter.GrowthFileName)
		if err := writeReport(path, func(f *os.File) error {
			return exporter.WriteGrowthXLSX(f, snap.Growth)
		}); err != nil {
			slog.Error("Failed to write growth report", "error", err, "path", path)
			os.Exit(1)
		}
		written = append(written, path)
	}

	if *mode == "summary" || *mode == "all" {
		growthPath := filepath.Join(*outputDir, "생육요약_전체.csv")
		means := analytics.GrowthMeans(snap.Growth)

		var best *analytics.BestEC
		if b, ok := analytics.BestByWeight(snap.Growth); ok {
			best = &b
		}

		if err := writeReport(growthPath, func(f *os.File) error {
			return exporter.WriteGrowthSummaryCSV(f, means, best)
		}); err != nil {
			slog.Error("Failed to write growth summary", "error", err, "path", growthPath)
			os.Exit(1)
		}
		written = append(written, growthPath)

		envPath := filepath.Join(*outputDir, "환경요약_전체.csv")
		envMeans := analytics.EnvironmentMeans(snap.Environment)
		if err := writeReport(envPath, func(f *os.File) error {
			return exporter.WriteEnvironmentSummaryCSV(f, envMeans)
		}); err != nil {
			slog.Error("Failed to write environment summary", "error", err, "path", envPath)
			os.Exit(1)
		}
		written = append(written, envPath)

		printSummary(means, best)
	}

	slog.Info("Reports generated", "count", len(written))
	for _, p := range written {
		fmt.Println(p)
	}
}

func writeReport(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}

	if err := write(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func printSummary(means []analytics.GrowthGroupMean, best *analytics.BestEC) {
	if len(means) == 0 {
		return
	}

	fmt.Println("\n=== 학교별 생육 평균 ===")
	fmt.Println("School | Target EC | Samples | Leaf Count | Shoot Length | Fresh Weight")
	fmt.Println("-------|-----------|---------|------------|--------------|-------------")

	for _, m := range means {
		fmt.Printf("%-6s | %9.1f | %7d | %10.2f | %12.2f | %12.2f\n",
			m.School, m.TargetEC, m.Count, m.LeafCount, m.ShootLength, m.FreshWeight)
	}

	if best != nil {
		fmt.Printf("\n최적 EC: %.1f (평균 생체중 %.2fg, 표본 %d)\n",
			best.TargetEC, best.MeanFreshWeight, best.SampleCount)
	}
}
