// Package undock converts unRAID DockerMan XML container templates into
// Docker Compose YAML files.
//
// # Overview
//
// unRAID stores each managed container as a single XML template. This
// module parses one template, applies a fixed set of field mappings and
// writes the equivalent Compose service, so containers can move from the
// DockerMan UI to a compose-managed workflow without retyping their
// configuration.
//
// The conversion is a linear pipeline with no intermediate state:
//
//	┌──────────────┐     ┌──────────────┐     ┌──────────────┐
//	│  XML parse   │────►│  field map   │────►│  YAML write  │
//	│ (template)   │     │  (mapper)    │     │  (compose)   │
//	└──────────────┘     └──────────────┘     └──────────────┘
//
// # Packages
//
//   - internal/template: XML template parsing and eager validation
//   - internal/mapper: the pure template-to-service transformation
//   - internal/compose: YAML serialization and all-or-nothing file output
//   - internal/validation: field-level template validation
//   - internal/commands: the cobra CLI surface
//   - models: shared template and Compose data types
//
// # Guarantees
//
// Every port, volume and environment entry of the template maps to exactly
// one output entry, in template order. Serialization happens fully in
// memory before the output file is created, so a failed conversion never
// leaves a partial Compose file behind.
package undock
