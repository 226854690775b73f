package view

import (
	"log/slog"

	"ladderview/internal/config"
	"ladderview/internal/logging"
	"ladderview/internal/pipeline"
	"ladderview/internal/record"
)

// Options tunes Build.
type Options struct {
	// HiddenFields are left out of Details. Nil selects config.DefaultHiddenFields.
	HiddenFields map[string]struct{}
	// Shared drops configuration settings.
	Shared bool
	Logger *slog.Logger
}

// Identifier is one key identifier row.
type Identifier struct {
	Field string `json:"field"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Card is one summary card.
type Card struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// StageRow is a funnel stage together with what it removed.
type StageRow struct {
	pipeline.Stage
	Removed []string `json:"removed"`
}

// Model is everything needed to render one record.
type Model struct {
	Shared      bool             `json:"shared"`
	Identifiers []Identifier     `json:"identifiers"`
	Cards       []Card           `json:"cards"`
	Stages      []StageRow       `json:"stages"`
	Metrics     pipeline.Metrics `json:"metrics"`
	Ladders     []LadderBlock    `json:"ladders"`
	Details     []Detail         `json:"details"`
	Settings    []Setting        `json:"settings,omitempty"`
}

// Build renders rec.
func Build(rec record.Record, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	hidden := opts.HiddenFields
	if hidden == nil {
		hidden = make(map[string]struct{}, len(config.DefaultHiddenFields))
		for _, name := range config.DefaultHiddenFields {
			hidden[name] = struct{}{}
		}
	}

	funnel := pipeline.Analyze(rec)
	stages := make([]StageRow, len(funnel.Stages))
	for i, s := range funnel.Stages {
		stages[i] = StageRow{Stage: s, Removed: funnel.Removed[i]}
	}

	m := Model{
		Shared:      opts.Shared,
		Identifiers: Identifiers(rec),
		Cards:       Cards(rec),
		Stages:      stages,
		Metrics:     funnel.Metrics,
		Ladders:     Ladders(rec, logger),
		Details:     Details(rec, hidden),
	}
	if !opts.Shared {
		m.Settings = Settings(rec)
	}
	logger.Debug("record model built",
		logging.Int("ladder_blocks", len(m.Ladders)),
		logging.Int("details", len(m.Details)),
		logging.Int("settings", len(m.Settings)),
	)
	return m
}
