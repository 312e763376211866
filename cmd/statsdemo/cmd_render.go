package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"jobboard-backend/internal/analysis"
	"jobboard-backend/internal/applications"
	"jobboard-backend/internal/figures"
	"jobboard-backend/internal/jobs"
	"jobboard-backend/internal/shared/storage/object/local"
	"jobboard-backend/internal/stats"
)

var renderFlags struct {
	records string
	out     string
	config  string
	presets []string
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Fit every pairing and write one PNG per figure",
	RunE:  runRender,
}

func init() {
	f := renderCmd.Flags()
	f.StringVar(&renderFlags.records, "records", "", "JSON file with an array of applications (default: bundled sample)")
	f.StringVarP(&renderFlags.out, "out", "o", "./figures", "Output directory")
	f.StringVar(&renderFlags.config, "config", "", "Pairings YAML file (default: whole catalog)")
	f.StringSliceVar(&renderFlags.presets, "preset", nil, "Catalog preset names to render (repeatable)")
}

func runRender(cmd *cobra.Command, _ []string) error {
	apps, err := loadApplications(renderFlags.records)
	if err != nil {
		return err
	}
	pairings, err := selectPairings(renderFlags.config, renderFlags.presets)
	if err != nil {
		return err
	}

	objects, err := local.New(renderFlags.out)
	if err != nil {
		return fmt.Errorf("open output dir: %w", err)
	}
	fitter := analysis.NewFitter(figures.NewIDGenerator(), figures.NewStore(objects))
	svc := stats.NewService(nil, nil, fitter, pairings)

	job := jobs.Job{ID: "demo", Title: "Demo job"}
	result, err := svc.ComputeJobStatistics(context.Background(), job, apps)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Applications: %d\n", len(result.Applications))
	for i, id := range result.Figures {
		fmt.Fprintf(out, "  %-32s %s\n", pairings[i].Name, filepath.Join(objects.Dir(), id+".png"))
	}
	return nil
}

func selectPairings(configPath string, presets []string) ([]stats.Pairing, error) {
	if len(presets) > 0 {
		out := make([]stats.Pairing, 0, len(presets))
		for _, name := range presets {
			p, ok := stats.Preset(name)
			if !ok {
				return nil, fmt.Errorf("unknown preset %q", name)
			}
			out = append(out, p)
		}
		return out, nil
	}
	if configPath != "" {
		return stats.LoadPairings(configPath)
	}
	return append([]stats.Pairing(nil), stats.DefaultCatalog...), nil
}

func loadApplications(path string) ([]applications.Application, error) {
	if path == "" {
		return sampleApplications(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	var apps []applications.Application
	if err := json.Unmarshal(data, &apps); err != nil {
		return nil, fmt.Errorf("parse records: %w", err)
	}
	return apps, nil
}
