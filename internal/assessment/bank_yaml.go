package assessment

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/palcemvglaz/neb-hetzner-deploy-sub001/internal/model"
)

type bankFile struct {
	Questions []model.Question `yaml:"questions"`
}

// LoadBankFile reads a question catalog from a YAML file and validates it.
// Used to override the built-in bank without a rebuild.
func LoadBankFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	return ParseBankYAML(data)
}

// ParseBankYAML parses and validates a YAML question catalog.
func ParseBankYAML(data []byte) (*Bank, error) {
	var f bankFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}
	if len(f.Questions) == 0 {
		return nil, fmt.Errorf("question bank file contains no questions")
	}
	return NewBank(f.Questions)
}
