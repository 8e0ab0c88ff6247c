package config

import (
	"encoding/json"
	"os"
)

// Config holds file-based defaults for a run. Explicit CLI flags win over
// these values, which in turn win over built-in defaults.
type Config struct {
	Model          string   `json:"model"`
	BaseURL        string   `json:"base_url"`
	TimeoutSeconds int      `json:"timeout_seconds"`
	MaxChunkSize   int      `json:"max_chunk_size"`
	ContentClass   string   `json:"content_class"`
	CutMarkers     []string `json:"cut_markers"`
	AnswerMarkers  []string `json:"answer_markers"`
	Quiet          bool     `json:"quiet"`
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Marshal(cfg Config) ([]byte, error) {
	return json.MarshalIndent(cfg, "", "  ")
}
