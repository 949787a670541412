package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "publication-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SourceConfig holds settings for the bibliographic source (DBLP).
type SourceConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the maximum number of publication hits requested
	// from the search endpoint (default 1000).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// AuthorMaxResults is the maximum number of hits requested from the
	// author-search endpoint when resolving profile links (default 10).
	AuthorMaxResults int `json:"author_max_results" yaml:"author_max_results"`
}

// InstitutionConfig holds settings for the OpenAlex institution lookup.
type InstitutionConfig struct {
	HTTPConfig `yaml:",inline"`

	// Email is sent as the mailto parameter for polite pool access.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// DisplayConfig holds the default display options for fetched lists.
type DisplayConfig struct {
	// PageSize is the number of display items per page (default 10).
	PageSize int `json:"page_size" yaml:"page_size"`

	// SortBy selects the sort key: "year" or "title".
	SortBy string `json:"sort_by" yaml:"sort_by"`

	// SortOrder selects the direction: "asc" or "desc".
	SortOrder string `json:"sort_order" yaml:"sort_order"`

	// GroupBy selects grouping: "year", "type", "author", or "none".
	GroupBy string `json:"group_by" yaml:"group_by"`
}

// ExportConfig holds settings for the export stage.
type ExportConfig struct {
	// OutputDir is the directory for exported files (default ".").
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Source      SourceConfig      `json:"source" yaml:"source"`
	Institution InstitutionConfig `json:"institution" yaml:"institution"`
	Display     DisplayConfig     `json:"display" yaml:"display"`
	Export      ExportConfig      `json:"export" yaml:"export"`
}
