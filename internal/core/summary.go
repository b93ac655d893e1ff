package core

import (
	"github.com/shopspring/decimal"

	"cpe-synth/internal/types"
)

// DefaultPreviewSize is how many leading records a summary echoes back.
const DefaultPreviewSize = 5

// Summarize groups records by category in first-seen order and collects the
// aggregate figures printed after a run.
func Summarize(records []types.Record, previewSize int) types.Summary {
	summary := types.Summary{Total: len(records)}
	index := map[types.Category]int{}
	total := decimal.Zero
	for _, record := range records {
		category := types.Category(record.Category)
		pos, ok := index[category]
		if !ok {
			pos = len(summary.Categories)
			index[category] = pos
			summary.Categories = append(summary.Categories, types.CategoryCount{Category: category})
		}
		summary.Categories[pos].Count++
		total = total.Add(decimal.NewFromFloat(record.SizeMB))
		if record.Date != "" {
			if summary.OldestDate == "" || record.Date < summary.OldestDate {
				summary.OldestDate = record.Date
			}
			if record.Date > summary.NewestDate {
				summary.NewestDate = record.Date
			}
		}
	}
	summary.TotalSizeMB = total.Round(2).InexactFloat64()
	if previewSize < 0 {
		previewSize = 0
	}
	if previewSize > len(records) {
		previewSize = len(records)
	}
	summary.Preview = append([]types.Record(nil), records[:previewSize]...)
	return summary
}
