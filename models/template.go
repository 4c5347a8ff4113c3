package models

import (
	"encoding/xml"
	"strings"
)

// ContainerTemplate is the in-memory form of an unRAID DockerMan XML
// template. One template describes exactly one container.
type ContainerTemplate struct {
	XMLName xml.Name `xml:"Container" yaml:"-" json:"-"`

	Name       string `xml:"Name" json:"name" validate:"required"`
	Repository string `xml:"Repository" json:"repository" validate:"required"`
	Network    string `xml:"Network" json:"network,omitempty"`
	Privileged string `xml:"Privileged" json:"privileged,omitempty"`

	// Descriptive metadata. Only surfaces in the output when label
	// emission is enabled.
	Registry      string `xml:"Registry" json:"registry,omitempty"`
	Shell         string `xml:"Shell" json:"shell,omitempty"`
	Support       string `xml:"Support" json:"support,omitempty"`
	Project       string `xml:"Project" json:"project,omitempty"`
	Overview      string `xml:"Overview" json:"overview,omitempty"`
	Category      string `xml:"Category" json:"category,omitempty"`
	WebUI         string `xml:"WebUI" json:"webui,omitempty"`
	Icon          string `xml:"Icon" json:"icon,omitempty"`
	TemplateURL   string `xml:"TemplateURL" json:"templateURL,omitempty"`
	DateInstalled string `xml:"DateInstalled" json:"dateInstalled,omitempty"`
	DonateText    string `xml:"DonateText" json:"donateText,omitempty"`
	DonateLink    string `xml:"DonateLink" json:"donateLink,omitempty"`
	Requires      string `xml:"Requires" json:"requires,omitempty"`

	CPUSet      string `xml:"CPUset" json:"cpuset,omitempty"`
	PostArgs    string `xml:"PostArgs" json:"postArgs,omitempty"`
	ExtraParams string `xml:"ExtraParams" json:"extraParams,omitempty"`

	// Configs holds the repeated <Config> elements in document order.
	// Document order is significant: it becomes the output order of
	// ports, volumes and environment entries.
	Configs []TemplateConfig `xml:"Config" json:"configs,omitempty" validate:"dive"`
}

// Config types recognized in DockerMan templates. Entries with any other
// type are carried through parsing but produce no output.
const (
	ConfigTypePort     = "Port"
	ConfigTypePath     = "Path"
	ConfigTypeDevice   = "Device"
	ConfigTypeDevices  = "Devices"
	ConfigTypeVariable = "Variable"
	ConfigTypeLabel    = "Label"
)

// TemplateConfig is one <Config> element of a template. Depending on Type
// it describes a port mapping, a volume mapping, a device mapping, an
// environment variable or a container label.
type TemplateConfig struct {
	Name        string `xml:"Name,attr" json:"name"`
	Target      string `xml:"Target,attr" json:"target"`
	Default     string `xml:"Default,attr" json:"default,omitempty"`
	Mode        string `xml:"Mode,attr" json:"mode,omitempty"`
	Type        string `xml:"Type,attr" json:"type"`
	Description string `xml:"Description,attr" json:"description,omitempty"`
	Display     string `xml:"Display,attr" json:"display,omitempty"`
	Required    string `xml:"Required,attr" json:"required,omitempty"`
	Mask        string `xml:"Mask,attr" json:"mask,omitempty"`

	// Value is the configured value (element text). When empty the
	// Default attribute applies, see ResolvedValue.
	Value string `xml:",chardata" json:"value,omitempty"`
}

// ResolvedValue returns the effective value of the config entry: the
// element text when present, otherwise the Default attribute.
func (c TemplateConfig) ResolvedValue() string {
	if v := strings.TrimSpace(c.Value); v != "" {
		return v
	}
	return strings.TrimSpace(c.Default)
}

// IsPrivileged reports whether the template requests privileged mode.
func (t *ContainerTemplate) IsPrivileged() bool {
	return strings.EqualFold(strings.TrimSpace(t.Privileged), "true")
}

// ConfigsOfType returns the template's config entries of the given type,
// preserving document order.
func (t *ContainerTemplate) ConfigsOfType(configType string) []TemplateConfig {
	var out []TemplateConfig
	for _, c := range t.Configs {
		if c.Type == configType {
			out = append(out, c)
		}
	}
	return out
}
