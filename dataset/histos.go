package dataset

import (
	"math"
	"sort"
	"strings"

	"github.com/Phenomenology-group-uniandes/hep-pheno-tools/histogram"
)

// DefaultBins returns the standard binning pattern table for kinematic
// feature columns. Keys are substring patterns matched against column labels
// by MakeHistograms; values are the binning to use when the pattern hits.
func DefaultBins() map[string]histogram.Binning {
	return map[string]histogram.Binning{
		"#Delta{R}":        {NBins: 96, Low: 0, High: 7},
		"#Delta{#eta}":     {NBins: 80, Low: -5, High: 5},
		"#Delta{#phi}":     {NBins: 52, Low: -3.25, High: 3.25},
		"#Delta{pT}":       {NBins: 120, Low: 0, High: 1500},
		"#Delta{#vec{pT}}": {NBins: 240, Low: 0, High: 4800},
		"#Delta{#vec{p}}":  {NBins: 240, Low: 0, High: 4800},
		"MET(GeV)":         {NBins: 80, Low: 0, High: 1000},
		"pT_":              {NBins: 160, Low: 0, High: 2000},
		"sT(GeV)":          {NBins: 200, Low: 0, High: 4000},
		"mT(GeV)":          {NBins: 200, Low: 0, High: 4000},
		"#eta_":            {NBins: 80, Low: -5, High: 5},
		"#phi_":            {NBins: 128, Low: -3.2, High: 3.2},
		"Energy_":          {NBins: 80, Low: 0, High: 1000},
	}
}

// matchBins returns the binning of the first pattern (in lexicographic
// pattern order) contained in label.
func matchBins(label string, bins map[string]histogram.Binning) (histogram.Binning, bool) {
	patterns := make([]string, 0, len(bins))
	for p := range bins {
		patterns = append(patterns, p)
	}
	sort.Strings(patterns)

	for _, p := range patterns {
		if strings.Contains(label, p) {
			return bins[p], true
		}
	}

	return histogram.Binning{}, false
}

// MakeHistograms builds one histogram per table column, named after the
// column label and normalized to integral. The binning comes from the first
// matching substring pattern in bins (patterns tried in lexicographic order);
// columns matching no pattern fall back to the Sturges rule over their
// non-NaN cells. NaN cells never enter a histogram, and columns holding only
// NaN are skipped.
//
// Errors:
//   - ErrEmptyTable — the table has no rows.
func MakeHistograms(t *Table, integral float64, bins map[string]histogram.Binning) (map[string]*histogram.Histogram, error) {
	if t == nil || t.Rows() == 0 {
		return nil, ErrEmptyTable
	}

	out := make(map[string]*histogram.Histogram, len(t.labels))
	for _, label := range t.labels {
		samples := make([]float64, 0, t.rows)
		for _, v := range t.columns[label] {
			if !math.IsNaN(v) {
				samples = append(samples, v)
			}
		}
		if len(samples) == 0 {
			continue
		}

		b, ok := matchBins(label, bins)
		if !ok {
			var err error
			b, err = histogram.Sturges(samples)
			if err != nil {
				return nil, err
			}
		}

		h, err := histogram.Build(label, samples, b, integral)
		if err != nil {
			return nil, err
		}
		out[label] = h
	}

	return out, nil
}
