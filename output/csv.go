package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/asatlas/peergroup/stats"
)

// WriteStatsCSV exports the per-country aggregates as CSV with a header row,
// one row per top country in table order.
func WriteStatsCSV(path string, s stats.Statistics) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create stats CSV %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"rank", "country", "peer_links"}); err != nil {
		return err
	}
	for i, row := range s.TopCountries {
		record := []string{
			strconv.Itoa(i + 1),
			row.Country,
			strconv.Itoa(row.Links),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
