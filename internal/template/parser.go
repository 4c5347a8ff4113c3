// Package template parses unRAID DockerMan XML templates into the typed
// in-memory model used by the mapper.
//
// Parsing is eager about required fields: a document that is well-formed
// XML but lacks a container name or image repository fails here, not at
// serialization time.
package template

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/arifer/undock-compose/internal/validation"
	"github.com/arifer/undock-compose/models"
)

// ParseError reports a template that could not be parsed: either the
// document is not well-formed XML or required fields are missing.
type ParseError struct {
	// Path is the template file path, empty when parsing raw bytes.
	Path string

	// Reason is a human-readable description of what is wrong.
	Reason string

	// Err is the underlying decoder error, if any.
	Err error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("malformed template %s: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("malformed template: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

var defaultValidator = validation.New()

// ParseFile reads and parses the template at path.
func ParseFile(path string) (*models.ContainerTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template: %w", err)
	}

	tpl, err := Parse(data)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = path
		}
		return nil, err
	}
	return tpl, nil
}

// Parse decodes and validates a template document. The returned template
// has leading and trailing whitespace stripped from all scalar fields.
func Parse(data []byte) (*models.ContainerTemplate, error) {
	tpl, err := Decode(data)
	if err != nil {
		return nil, err
	}

	result := defaultValidator.ValidateTemplate(tpl)
	if !result.Valid {
		return nil, &ParseError{Reason: describeErrors(result.Errors)}
	}

	return tpl, nil
}

// Decode unmarshals a template document without validating required
// fields. The validate command uses it to report all field errors at once.
func Decode(data []byte) (*models.ContainerTemplate, error) {
	var tpl models.ContainerTemplate
	if err := xml.Unmarshal(data, &tpl); err != nil {
		return nil, &ParseError{Reason: "document is not well-formed XML", Err: err}
	}

	normalize(&tpl)
	return &tpl, nil
}

// normalize trims the whitespace XML decoding leaves around element text.
func normalize(tpl *models.ContainerTemplate) {
	fields := []*string{
		&tpl.Name, &tpl.Repository, &tpl.Network, &tpl.Privileged,
		&tpl.Registry, &tpl.Shell, &tpl.Support, &tpl.Project,
		&tpl.Overview, &tpl.Category, &tpl.WebUI, &tpl.Icon,
		&tpl.TemplateURL, &tpl.DateInstalled, &tpl.DonateText,
		&tpl.DonateLink, &tpl.Requires, &tpl.CPUSet, &tpl.PostArgs,
		&tpl.ExtraParams,
	}
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
	for i := range tpl.Configs {
		tpl.Configs[i].Value = strings.TrimSpace(tpl.Configs[i].Value)
	}
}

func describeErrors(errs []validation.ValidationError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Message)
	}
	return strings.Join(parts, "; ")
}
