// Package compose serializes the mapped service model into a Compose
// YAML document and writes it to disk.
package compose

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/arifer/undock-compose/models"
)

const outputFileMode = 0o644

// Marshal renders the Compose file as YAML. Field order follows the model
// declaration and list/mapping order follows the template document.
func Marshal(file *models.ComposeFile) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(file); err != nil {
		return nil, fmt.Errorf("encoding compose file: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding compose file: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteFile serializes the Compose file and writes it to path in one shot.
// Serialization happens fully in memory first, so a failed mapping never
// leaves a partial output file behind. An existing file is an error unless
// force is set.
func WriteFile(path string, file *models.ComposeFile, force bool) error {
	data, err := Marshal(file)
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w (use --force to overwrite)",
				&os.PathError{Op: "create", Path: path, Err: fs.ErrExist})
		}
	}

	if err := os.WriteFile(path, data, outputFileMode); err != nil {
		return fmt.Errorf("writing compose file: %w", err)
	}

	return nil
}

// DefaultOutputPath places the output file next to the input template.
func DefaultOutputPath(templatePath, outputName string) string {
	return filepath.Join(filepath.Dir(templatePath), outputName)
}
