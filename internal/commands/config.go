package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var showConfigCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runShowConfig,
}

var initConfigCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration file",
	RunE:  runInitConfig,
}

func init() {
	configCmd.AddCommand(showConfigCmd)
	configCmd.AddCommand(initConfigCmd)
}

func runShowConfig(cmd *cobra.Command, args []string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	fmt.Println(string(data))
	return nil
}

func runInitConfig(cmd *cobra.Command, args []string) error {
	defaultConfig := `# undock-compose Configuration

convert:
  compose_version: "3.7"
  output_name: docker-compose.yaml
  label_prefix: net.unraid.docker
  include_labels: false
  host_env: false
  timezone: UTC
`

	filename := "undock.yaml"
	if _, err := os.Stat(filename); err == nil {
		return fmt.Errorf("config file %s already exists", filename)
	}

	if err := os.WriteFile(filename, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("✓ Created %s\n", filename)
	return nil
}
