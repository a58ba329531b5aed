package presentation

import (
	"encoding/json"
	"io"

	"github.com/zjrosen/pushrelease/internal/release"
)

// SummaryDTO is the machine readable result of a release run.
type SummaryDTO struct {
	RunID      string   `json:"run_id"`
	Kind       string   `json:"kind"`
	Mode       string   `json:"mode"`
	Steps      []string `json:"steps"`
	Version    string   `json:"version"`
	GitVersion string   `json:"git_version,omitempty"`
	Bumped     []string `json:"bumped"` // always present, empty when nothing was bumped
	Warnings   int      `json:"warnings"`
	DryRun     bool     `json:"dry_run"`
}

// FromState converts a finished run to a DTO.
func FromState(state *release.State) SummaryDTO {
	bumped := make([]string, len(state.Bumped))
	copy(bumped, state.Bumped)
	steps := make([]string, len(state.Steps))
	copy(steps, state.Steps)
	mode := string(state.Mode)
	if mode == "" {
		mode = "full"
	}
	return SummaryDTO{
		RunID:      state.RunID,
		Kind:       string(state.Kind),
		Mode:       mode,
		Steps:      steps,
		Version:    state.Version,
		GitVersion: state.GitVersion,
		Bumped:     bumped,
		Warnings:   state.Warnings,
		DryRun:     state.DryRun,
	}
}

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// FormatSummary writes a release summary as indented JSON.
func (f *Formatter) FormatSummary(summary SummaryDTO) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(summary)
}
