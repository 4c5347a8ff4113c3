// Package mapper transforms a parsed container template into a Compose
// file model. The transformation is a pure function of the template and
// the options: no I/O, no side effects.
package mapper

import (
	"fmt"
	"strings"

	"github.com/arifer/undock-compose/models"
)

// Defaults applied when an Options field is left zero.
const (
	DefaultComposeVersion = "3.7"
	DefaultLabelPrefix    = "net.unraid.docker"
	DefaultTimezone       = "UTC"
)

// Options control the optional parts of the mapping.
type Options struct {
	// IncludeLabels emits the template's descriptive metadata and
	// per-config attributes as labels under LabelPrefix.
	IncludeLabels bool

	// HostEnv appends the unRAID host environment variables (TZ,
	// HOST_OS, HOST_HOSTNAME, HOST_CONTAINERNAME) after the template's
	// own variables.
	HostEnv bool

	// LabelPrefix is the namespace for metadata labels.
	LabelPrefix string

	// ComposeVersion is the top-level version key of the output.
	ComposeVersion string

	// Timezone is the TZ value used when HostEnv is set.
	Timezone string
}

func (o Options) withDefaults() Options {
	if o.LabelPrefix == "" {
		o.LabelPrefix = DefaultLabelPrefix
	}
	if o.ComposeVersion == "" {
		o.ComposeVersion = DefaultComposeVersion
	}
	if o.Timezone == "" {
		o.Timezone = DefaultTimezone
	}
	return o
}

// Map converts a template into a Compose file model. Every port, volume
// and environment entry of the template maps to exactly one output entry,
// in document order.
func Map(tpl *models.ContainerTemplate, opts Options) *models.ComposeFile {
	opts = opts.withDefaults()

	service := models.ComposeService{
		ContainerName: tpl.Name,
		Image:         tpl.Repository,
		Privileged:    tpl.IsPrivileged(),
		CPUSet:        tpl.CPUSet,
		Command:       tpl.PostArgs,
	}

	extra := parseExtraParams(tpl.ExtraParams)
	service.Restart = extra.restart

	network := tpl.Network
	if extra.network != "" {
		network = extra.network
	}

	file := &models.ComposeFile{
		Version:  opts.ComposeVersion,
		Services: map[string]models.ComposeService{},
	}

	switch {
	case network == "":
		// No network attachment requested.
	case isBuiltinNetworkMode(network):
		service.NetworkMode = network
	default:
		service.Networks = []string{network}
		file.Networks = map[string]models.ComposeNetwork{
			network: {External: true, Name: network},
		}
	}

	for _, cfg := range tpl.Configs {
		value := escapeInterpolation(cfg.ResolvedValue())

		switch cfg.Type {
		case models.ConfigTypePort:
			service.Ports = append(service.Ports, formatPort(value, cfg.Target, cfg.Mode))
		case models.ConfigTypePath:
			service.Volumes = append(service.Volumes, formatMount(value, cfg.Target, cfg.Mode))
		case models.ConfigTypeDevice, models.ConfigTypeDevices:
			service.Devices = append(service.Devices, formatMount(value, cfg.Target, cfg.Mode))
		case models.ConfigTypeVariable:
			service.Environment.Set(cfg.Target, value)
		case models.ConfigTypeLabel:
			service.Labels.Set(cfg.Target, value)
		}

		if opts.IncludeLabels {
			addConfigLabels(&service.Labels, opts.LabelPrefix, cfg)
		}
	}

	if opts.HostEnv {
		service.Environment.Set("TZ", opts.Timezone)
		service.Environment.Set("HOST_OS", "Unraid")
		service.Environment.Set("HOST_HOSTNAME", tpl.Name)
		service.Environment.Set("HOST_CONTAINERNAME", tpl.Name)
	}

	if opts.IncludeLabels {
		addMetadataLabels(&service.Labels, opts.LabelPrefix, tpl)
		if len(extra.leftover) > 0 {
			service.Labels.Set(opts.LabelPrefix+".extra_params", strings.Join(extra.leftover, " "))
		}
	}

	file.Services[tpl.Name] = service
	return file
}

// formatPort builds a "host:container[/protocol]" string. A missing host
// port reuses the container port, binding the same port on all interfaces.
func formatPort(hostPort, containerPort, mode string) string {
	if hostPort == "" {
		hostPort = containerPort
	}
	s := hostPort + ":" + containerPort
	if mode != "" {
		s += "/" + strings.ToLower(mode)
	}
	return s
}

// formatMount builds a "host:container[:mode]" string.
func formatMount(hostPath, containerPath, mode string) string {
	s := hostPath + ":" + containerPath
	if mode != "" {
		s += ":" + mode
	}
	return s
}

// escapeInterpolation doubles literal dollar signs so Compose does not
// treat them as variable interpolation.
func escapeInterpolation(value string) string {
	return strings.ReplaceAll(value, "$", "$$")
}

// isBuiltinNetworkMode reports whether the template's network value names
// a Docker network mode rather than an attachable network.
func isBuiltinNetworkMode(network string) bool {
	switch network {
	case "bridge", "host", "none":
		return true
	}
	return strings.HasPrefix(network, "container:")
}

// addMetadataLabels preserves the template's descriptive metadata under the
// label prefix. Empty values are skipped to keep the output diffable.
func addMetadataLabels(labels *models.Mapping, prefix string, tpl *models.ContainerTemplate) {
	meta := []models.Pair{
		{Key: "registry", Value: tpl.Registry},
		{Key: "shell", Value: tpl.Shell},
		{Key: "support", Value: tpl.Support},
		{Key: "project", Value: tpl.Project},
		{Key: "overview", Value: tpl.Overview},
		{Key: "category", Value: tpl.Category},
		{Key: "icon", Value: tpl.Icon},
		{Key: "webui", Value: tpl.WebUI},
		{Key: "managed", Value: "compose"},
		{Key: "template", Value: tpl.TemplateURL},
		{Key: "installed", Value: tpl.DateInstalled},
		{Key: "donate.text", Value: tpl.DonateText},
		{Key: "donate.link", Value: tpl.DonateLink},
		{Key: "requires", Value: tpl.Requires},
	}
	for _, p := range meta {
		if p.Value == "" {
			continue
		}
		labels.Set(prefix+"."+p.Key, p.Value)
	}
}

// addConfigLabels preserves the DockerMan attributes of one config entry.
func addConfigLabels(labels *models.Mapping, prefix string, cfg models.TemplateConfig) {
	header := fmt.Sprintf("%s.config.%s", prefix, strings.ReplaceAll(cfg.Name, " ", "_"))
	attrs := []models.Pair{
		{Key: "default", Value: cfg.Default},
		{Key: "description", Value: cfg.Description},
		{Key: "display", Value: cfg.Display},
		{Key: "required", Value: cfg.Required},
		{Key: "mask", Value: cfg.Mask},
	}
	for _, p := range attrs {
		if p.Value == "" {
			continue
		}
		labels.Set(header+"."+p.Key, p.Value)
	}
}

// extraParams holds the recognized fragments of the ExtraParams element.
type extraParams struct {
	restart  string
	network  string
	leftover []string
}

// parseExtraParams extracts the docker run flags DockerMan users commonly
// put in ExtraParams. Only --restart and --net/--network translate to
// Compose fields; everything else is collected verbatim.
func parseExtraParams(raw string) extraParams {
	var out extraParams

	tokens := strings.Fields(raw)
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		flag, value, inline := strings.Cut(tok, "=")
		take := func() string {
			if inline {
				return value
			}
			if i+1 < len(tokens) {
				i++
				return tokens[i]
			}
			return ""
		}

		switch flag {
		case "--restart":
			out.restart = take()
		case "--net", "--network":
			out.network = take()
		default:
			out.leftover = append(out.leftover, tok)
		}
	}

	return out
}
