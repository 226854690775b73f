package view

import (
	"log/slog"
	"strconv"

	"ladderview/internal/ladder"
	"ladderview/internal/record"
	"ladderview/internal/textutil"
)

// CandidateRow is the display form of one ladder candidate.
type CandidateRow struct {
	Name       string `json:"name"`
	Selected   bool   `json:"selected"`
	Bitrate    string `json:"bitrate"`
	Reason     string `json:"reason"`
	VMAF       string `json:"vmaf"`
	Definition string `json:"definition"`
}

// LadderBlock is one classified ladder info field.
type LadderBlock struct {
	Field        string         `json:"field"`
	Label        string         `json:"label"`
	Selected     []CandidateRow `json:"selected"`
	Rejected     []CandidateRow `json:"rejected"`
	Total        int            `json:"total"`
	Unclassified int            `json:"unclassified"`
}

// Empty reports whether no candidate could be parsed.
func (b LadderBlock) Empty() bool { return b.Total == 0 }

// Ladders classifies every ladder info field of rec, in record order.
func Ladders(rec record.Record, logger *slog.Logger) []LadderBlock {
	blocks := []LadderBlock{}
	for _, f := range rec.Fields() {
		if !record.IsLadderInfoField(f.Name) {
			continue
		}
		res := ladder.Classify(f.Value, ladder.WithLogger(logger))
		blocks = append(blocks, LadderBlock{
			Field:        f.Name,
			Label:        textutil.FieldLabel(f.Name),
			Selected:     candidateRows(res.Selected, true),
			Rejected:     candidateRows(res.Rejected, false),
			Total:        res.Total,
			Unclassified: res.Unclassified,
		})
	}
	return blocks
}

func candidateRows(cs []ladder.Candidate, selected bool) []CandidateRow {
	rows := make([]CandidateRow, 0, len(cs))
	for _, c := range cs {
		rows = append(rows, CandidateRow{
			Name:       c.Name,
			Selected:   selected,
			Bitrate:    formatBitrate(c.Bitrate),
			Reason:     textutil.OrNA(c.Reason),
			VMAF:       formatOptional(c.UniversalVMAF, 2),
			Definition: formatOptional(c.Definition, -1),
		})
	}
	return rows
}

func formatBitrate(bps float64) string {
	if bps == 0 {
		return textutil.NotAvailable
	}
	return strconv.FormatFloat(bps, 'f', -1, 64) + "bps"
}

// formatOptional renders a present, non-zero number with prec fractional
// digits (-1 for the shortest form).
func formatOptional(f *float64, prec int) string {
	if f == nil || *f == 0 {
		return textutil.NotAvailable
	}
	return strconv.FormatFloat(*f, 'f', prec, 64)
}
