// Package grouping partitions each AS record's peer links into per-country
// buckets.
package grouping

import (
	"sort"

	"github.com/asatlas/peergroup/model"
)

// GroupByCountry rebuilds grouped_by_country for every AS record in doc and
// returns the number of records processed.
//
// Buckets are created in the order their country is first seen while
// scanning links, then sorted by descending link count; the sort is stable,
// so equal-count countries keep first-seen order. Links land in their bucket
// in original relative order and are never copied or rewritten. A record
// without links gets an empty (non-nil) grouped_by_country.
func GroupByCountry(doc *model.Document) int {
	for _, asn := range doc.ASNs() {
		rec := doc.Get(asn)

		index := make(map[string]int) // country -> position in groups
		groups := model.CountryGroups{}

		for _, link := range rec.Links {
			country := link.PeerCountry()
			i, ok := index[country]
			if !ok {
				i = len(groups)
				index[country] = i
				groups = append(groups, model.CountryGroup{Country: country})
			}
			groups[i].Peers = append(groups[i].Peers, link)
			groups[i].Count++
		}

		sort.SliceStable(groups, func(i, j int) bool {
			return groups[i].Count > groups[j].Count
		})

		rec.Groups = groups
	}
	return doc.Len()
}
