// Package pipeline runs the load → group → report → save sequence.
package pipeline

import (
	"fmt"
	"path/filepath"

	"github.com/asatlas/peergroup/config"
	"github.com/asatlas/peergroup/grouping"
	"github.com/asatlas/peergroup/input"
	"github.com/asatlas/peergroup/output"
	"github.com/asatlas/peergroup/report"
	"github.com/asatlas/peergroup/stats"
	"github.com/asatlas/peergroup/util"
)

// Run executes one grouping pass. Any failure aborts the run before the
// output destination is touched; there is no partial output. The computed
// statistics are returned for callers that want them beyond the printed
// report.
func Run(cfg config.Config, rep *report.Reporter) (stats.Statistics, error) {
	if cfg.InputPath == "" || cfg.OutputPath == "" {
		return stats.Statistics{}, fmt.Errorf("both an input and an output path are required")
	}
	if samePath(cfg.InputPath, cfg.OutputPath) {
		return stats.Statistics{}, fmt.Errorf("output path %s would overwrite the input", cfg.OutputPath)
	}

	rep.Banner(cfg.InputPath, cfg.OutputPath)

	util.Debug("Loading enriched links from %s", cfg.InputPath)
	doc, err := input.Load(cfg.InputPath)
	if err != nil {
		return stats.Statistics{}, fmt.Errorf("load %s: %w", cfg.InputPath, err)
	}
	rep.Loaded(doc.Len())

	n := grouping.GroupByCountry(doc)
	rep.Grouped(n)

	summary := stats.Compute(doc)
	rep.Statistics(summary)

	if err := output.SaveDocument(cfg.OutputPath, doc); err != nil {
		return stats.Statistics{}, fmt.Errorf("save %s: %w", cfg.OutputPath, err)
	}
	rep.Saved(cfg.OutputPath)

	if cfg.StatsCSVPath != "" {
		if err := output.WriteStatsCSV(cfg.StatsCSVPath, summary); err != nil {
			return stats.Statistics{}, fmt.Errorf("write stats CSV %s: %w", cfg.StatsCSVPath, err)
		}
		util.Debug("Wrote country statistics to %s", cfg.StatsCSVPath)
	}

	return summary, nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return absA == absB
}
