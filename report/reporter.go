// Package report renders the run's human-readable progress and statistics
// to standard output.
package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/asatlas/peergroup/stats"
	"github.com/asatlas/peergroup/util"
)

const rule = "============================================================"

// Reporter prints the load/group/save confirmations and the country
// statistics table. It is pure observability: nothing it writes is part of
// the data contract, and quiet mode silences it entirely.
type Reporter struct {
	out   io.Writer
	quiet bool
	color *util.Colorizer
}

// NewReporter creates a Reporter writing to stdout. colorize is the final
// word on ANSI output; callers resolve flags and TTY state first (see
// util.ResolveColor).
func NewReporter(quiet, colorize bool) *Reporter {
	return &Reporter{
		out:   os.Stdout,
		quiet: quiet,
		color: &util.Colorizer{Enabled: colorize},
	}
}

// Banner prints the run header with the configured paths.
func (r *Reporter) Banner(inputPath, outputPath string) {
	if r.quiet {
		return
	}
	fmt.Fprintln(r.out, rule)
	fmt.Fprintln(r.out, r.color.Cyan("Add Country Grouping to Enriched Links"))
	fmt.Fprintln(r.out, rule)
	fmt.Fprintf(r.out, "Input:  %s\n", inputPath)
	fmt.Fprintf(r.out, "Output: %s\n", outputPath)
	fmt.Fprintln(r.out)
}

// Loaded confirms the input document was read.
func (r *Reporter) Loaded(n int) {
	if r.quiet {
		return
	}
	fmt.Fprintf(r.out, "%s Loaded %s ASes\n", r.check(), humanCount(n))
}

// Grouped confirms the per-AS transform finished.
func (r *Reporter) Grouped(n int) {
	if r.quiet {
		return
	}
	fmt.Fprintf(r.out, "%s Grouped peers for %s ASes\n", r.check(), humanCount(n))
}

// Statistics prints the corpus summary and the top-countries table.
func (r *Reporter) Statistics(s stats.Statistics) {
	if r.quiet {
		return
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, rule)
	fmt.Fprintln(r.out, "COUNTRY GROUPING STATISTICS")
	fmt.Fprintln(r.out, rule)
	fmt.Fprintf(r.out, "Total ASes: %s\n", humanCount(s.TotalASes))
	fmt.Fprintf(r.out, "Total unique peer countries: %s\n", humanCount(s.TotalCountries))
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "Top %d Peer Countries by Link Count:\n", stats.TopCountryLimit)
	for i, row := range s.TopCountries {
		fmt.Fprintf(r.out, "  %d. %s: %s peer links\n", i+1, r.color.Green(row.Country), humanCount(row.Links))
	}
	fmt.Fprintln(r.out, rule)
}

// Saved confirms the output document was written.
func (r *Reporter) Saved(path string) {
	if r.quiet {
		return
	}
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "%s Saved grouped data to %s\n", r.check(), path)
}

func (r *Reporter) check() string {
	return r.color.Green("✓")
}

// humanCount renders n with thousands separators, e.g. 1234567 → 1,234,567.
func humanCount(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
