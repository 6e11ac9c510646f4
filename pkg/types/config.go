package types

import "time"

// HTTPConfig holds shared HTTP settings used by sources that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "paper-rank/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// SourceConfig holds settings for fetching candidate papers.
type SourceConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// Backend selects the candidate source: "file" or "pubmed".
	Backend string `json:"backend" yaml:"backend" mapstructure:"backend"`

	// PapersFile is the YAML candidate file read by the file backend.
	PapersFile string `json:"papers_file,omitempty" yaml:"papers_file,omitempty" mapstructure:"papers_file"`

	// MaxResults is the number of candidates requested from the source (default 100).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`

	// Email is sent to NCBI E-utilities as the contact address.
	Email string `json:"email,omitempty" yaml:"email,omitempty" mapstructure:"email"`

	// APIKey is an optional NCBI API key for higher rate limits.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`
}

// PrestigeConfig describes the journal prestige table file.
type PrestigeConfig struct {
	// Path is the location of the delimited table (e.g. "scimagojr 2019.csv").
	Path string `json:"path" yaml:"path" mapstructure:"path"`

	// Delimiter separates columns (default ";").
	Delimiter string `json:"delimiter" yaml:"delimiter" mapstructure:"delimiter"`

	// IDColumn names the journal identifier column (default "Issn").
	IDColumn string `json:"id_column" yaml:"id_column" mapstructure:"id_column"`

	// ScoreColumn names the prestige column (default "SJR").
	ScoreColumn string `json:"score_column" yaml:"score_column" mapstructure:"score_column"`

	// Disabled ranks without a table; every journal scores 0. A run with
	// neither Path nor Disabled set fails.
	Disabled bool `json:"disabled,omitempty" yaml:"disabled,omitempty" mapstructure:"disabled"`
}

// LemmatizerKind selects how field words are reduced to a base form.
type LemmatizerKind string

const (
	LemmatizerMorphy   LemmatizerKind = "morphy"
	LemmatizerSnowball LemmatizerKind = "snowball"
)

// LexiconConfig holds settings for the lexical matcher.
type LexiconConfig struct {
	// Path is a YAML or SQLite lexical database. Empty selects the built-in lexicon.
	Path string `json:"path,omitempty" yaml:"path,omitempty" mapstructure:"path"`

	// Lemmatizer selects morphy (dictionary lookup) or snowball (stemming).
	Lemmatizer LemmatizerKind `json:"lemmatizer" yaml:"lemmatizer" mapstructure:"lemmatizer"`

	// Cutoff is the minimum similarity ratio for a fuzzy match (default 0.6).
	Cutoff float64 `json:"cutoff" yaml:"cutoff" mapstructure:"cutoff"`

	// MaxMatches caps matches per query word; 0 means unbounded.
	MaxMatches int `json:"max_matches" yaml:"max_matches" mapstructure:"max_matches"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	// Level is debug, info, warn, or error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Timestamps adds timestamps to log lines.
	Timestamps bool `json:"timestamps" yaml:"timestamps" mapstructure:"timestamps"`
}

// Config groups all settings of the tool.
type Config struct {
	Source   SourceConfig   `json:"source" yaml:"source" mapstructure:"source"`
	Prestige PrestigeConfig `json:"prestige" yaml:"prestige" mapstructure:"prestige"`
	Lexicon  LexiconConfig  `json:"lexicon" yaml:"lexicon" mapstructure:"lexicon"`
	Log      LogConfig      `json:"log" yaml:"log" mapstructure:"log"`
}
