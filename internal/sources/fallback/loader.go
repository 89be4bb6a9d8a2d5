package fallback

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hblboard/hblboard/internal/domain"
)

//go:embed fallback.yaml
var embeddedDataset []byte

// Loader reads the fallback dataset. With an empty file path it serves the
// embedded default; a configured path overrides it wholesale.
type Loader struct {
	filePath string
}

// NewLoader creates a fallback dataset loader. filePath may be empty.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load parses and validates the dataset. Called once at startup; any error
// here is a configuration problem, not a runtime condition.
func (l *Loader) Load() ([]*domain.Item, error) {
	data := embeddedDataset
	if l.filePath != "" {
		fileData, err := os.ReadFile(l.filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read fallback dataset: %w", err)
		}
		data = fileData
	}

	var config datasetConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse fallback dataset yaml: %w", err)
	}

	items, err := mapItems(config)
	if err != nil {
		return nil, fmt.Errorf("invalid fallback dataset: %w", err)
	}
	return items, nil
}
