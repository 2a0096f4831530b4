// Package stats computes corpus-wide summary statistics over a grouped
// document.
package stats

import (
	"sort"

	"github.com/asatlas/peergroup/model"
)

// TopCountryLimit caps the length of Statistics.TopCountries.
const TopCountryLimit = 15

// CountryCount is one aggregate row: a country and its summed link count
// across all ASes.
type CountryCount struct {
	Country string `json:"country"`
	Links   int    `json:"links"`
}

// Statistics summarizes a grouped document.
type Statistics struct {
	TotalASes      int            `json:"total_ases"`
	TotalCountries int            `json:"total_countries"`
	TopCountries   []CountryCount `json:"top_countries"`
}

// Compute derives Statistics from doc without mutating it. Records that were
// never grouped simply contribute no countries. TopCountries is ordered by
// descending aggregate count; equal counts are broken by country name
// ascending so the table is deterministic.
func Compute(doc *model.Document) Statistics {
	perCountry := make(map[string]int)
	for _, asn := range doc.ASNs() {
		for _, g := range doc.Get(asn).Groups {
			perCountry[g.Country] += g.Count
		}
	}

	rows := make([]CountryCount, 0, len(perCountry))
	for country, links := range perCountry {
		rows = append(rows, CountryCount{Country: country, Links: links})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Links != rows[j].Links {
			return rows[i].Links > rows[j].Links
		}
		return rows[i].Country < rows[j].Country
	})
	if len(rows) > TopCountryLimit {
		rows = rows[:TopCountryLimit]
	}

	return Statistics{
		TotalASes:      doc.Len(),
		TotalCountries: len(perCountry),
		TopCountries:   rows,
	}
}
