package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arifer/undock-compose/models"
)

func validTemplate() *models.ContainerTemplate {
	return &models.ContainerTemplate{
		Name:       "gitea",
		Repository: "gitea/gitea:latest",
		Configs: []models.TemplateConfig{
			{Name: "Web Port", Target: "3000", Value: "3000", Mode: "tcp", Type: models.ConfigTypePort},
			{Name: "Data", Target: "/data", Value: "/mnt/user/appdata/gitea", Type: models.ConfigTypePath},
		},
	}
}

func TestValidateTemplate_Valid(t *testing.T) {
	v := New()

	result := v.ValidateTemplate(validTemplate())
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateTemplate_MissingRequiredFields(t *testing.T) {
	v := New()

	tests := []struct {
		name          string
		mutate        func(*models.ContainerTemplate)
		expectedField string
	}{
		{
			name:          "missing name",
			mutate:        func(tpl *models.ContainerTemplate) { tpl.Name = "" },
			expectedField: "Name",
		},
		{
			name:          "missing repository",
			mutate:        func(tpl *models.ContainerTemplate) { tpl.Repository = "" },
			expectedField: "Repository",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tpl := validTemplate()
			tt.mutate(tpl)

			result := v.ValidateTemplate(tpl)
			assert.False(t, result.Valid)

			hasError := false
			for _, e := range result.Errors {
				if e.Field == tt.expectedField {
					hasError = true
					break
				}
			}
			assert.True(t, hasError, "Should have error for field: %s", tt.expectedField)
		})
	}
}

func TestValidateTemplate_UnknownConfigTypeAllowed(t *testing.T) {
	v := New()

	// DockerMan tolerates unrecognized config types, so validation must
	// not reject them; the mapper simply produces no entry for them.
	tpl := validTemplate()
	tpl.Configs = append(tpl.Configs, models.TemplateConfig{
		Name: "Weird", Target: "x", Type: "Teleport", Value: "y",
	})

	result := v.ValidateTemplate(tpl)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateTemplate_InvalidPorts(t *testing.T) {
	v := New()

	tests := []struct {
		name   string
		config models.TemplateConfig
	}{
		{
			name:   "non-numeric container port",
			config: models.TemplateConfig{Name: "P", Target: "http", Type: models.ConfigTypePort},
		},
		{
			name:   "out of range host port",
			config: models.TemplateConfig{Name: "P", Target: "80", Value: "70000", Type: models.ConfigTypePort},
		},
		{
			name:   "missing target",
			config: models.TemplateConfig{Name: "P", Value: "80", Type: models.ConfigTypePort},
		},
		{
			name:   "bad protocol",
			config: models.TemplateConfig{Name: "P", Target: "80", Value: "80", Mode: "icmp", Type: models.ConfigTypePort},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tpl := validTemplate()
			tpl.Configs = []models.TemplateConfig{tt.config}

			result := v.ValidateTemplate(tpl)
			assert.False(t, result.Valid)
			require.NotEmpty(t, result.Errors)
		})
	}
}

func TestValidateTemplate_EmptyHostPortAllowed(t *testing.T) {
	v := New()

	tpl := validTemplate()
	tpl.Configs = []models.TemplateConfig{
		{Name: "P", Target: "5432", Type: models.ConfigTypePort},
	}

	result := v.ValidateTemplate(tpl)
	assert.True(t, result.Valid)
}

func TestValidateTemplate_VariableRequiresTarget(t *testing.T) {
	v := New()

	tpl := validTemplate()
	tpl.Configs = []models.TemplateConfig{
		{Name: "V", Value: "1000", Type: models.ConfigTypeVariable},
	}

	result := v.ValidateTemplate(tpl)
	assert.False(t, result.Valid)
}
