package broll

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/dakotahermes/brollbot22/internal/models"
)

// ExportRecord is the flat per-prompt row used for CSV and JSON downloads.
// Sequence numbers are 1-based in output order.
type ExportRecord struct {
	Sequence          int      `json:"sequence"`
	InsertAfter       string   `json:"insert_after"`
	Prompt            string   `json:"prompt"`
	Duration          int      `json:"duration"`
	AspectRatio       string   `json:"aspect_ratio"`
	SearchInstruction string   `json:"search_instruction"`
	ConfidenceScore   *float64 `json:"confidence_score"`
}

// ExportRecords flattens prompts into export rows.
func ExportRecords(prompts []models.BrollPrompt) []ExportRecord {
	records := make([]ExportRecord, 0, len(prompts))
	for i, p := range prompts {
		records = append(records, ExportRecord{
			Sequence:          i + 1,
			InsertAfter:       p.InsertAfter,
			Prompt:            p.Prompt,
			Duration:          p.Duration,
			AspectRatio:       p.AspectRatio,
			SearchInstruction: p.SearchInstruction,
			ConfidenceScore:   p.ConfidenceScore,
		})
	}
	return records
}

// WriteCSV writes one header row plus one row per prompt.
func WriteCSV(w io.Writer, prompts []models.BrollPrompt) error {
	cw := csv.NewWriter(w)
	header := []string{"sequence", "insert_after", "prompt", "duration", "aspect_ratio", "search_instruction", "confidence_score"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range ExportRecords(prompts) {
		score := ""
		if r.ConfidenceScore != nil {
			score = strconv.FormatFloat(*r.ConfidenceScore, 'f', -1, 64)
		}
		row := []string{
			strconv.Itoa(r.Sequence),
			r.InsertAfter,
			r.Prompt,
			strconv.Itoa(r.Duration),
			r.AspectRatio,
			r.SearchInstruction,
			score,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the export rows as indented JSON.
func WriteJSON(w io.Writer, prompts []models.BrollPrompt) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportRecords(prompts))
}
