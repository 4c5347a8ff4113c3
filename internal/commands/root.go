package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arifer/undock-compose/internal/config"
	"github.com/arifer/undock-compose/internal/version"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "undock-compose <template-file> [compose-file]",
	Short: "Convert unRAID Docker templates to Compose files",
	Long: `undock-compose converts unRAID DockerMan XML container templates
into Docker Compose YAML files.

The template's ports, volumes, environment variables and network settings
become the corresponding Compose service fields, in template order. When no
output path is given, the Compose file is written as docker-compose.yaml
next to the input template.

Examples:
  # Convert a template, writing docker-compose.yaml next to it
  undock-compose my-gitea.xml

  # Convert to an explicit output path
  undock-compose my-gitea.xml stacks/gitea/compose.yaml

  # Preserve unRAID metadata as labels
  undock-compose my-gitea.xml --labels`,
	Version:       version.Version,
	Args:          cobra.RangeArgs(1, 2),
	RunE:          runConvert,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./undock.yaml)")

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "%s" .Version}}
`)
}

func initConfig() {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		fmt.Println(info.String())

		if cmd.Flag("verbose").Changed {
			fmt.Printf("\nDetails:\n")
			fmt.Printf("  Version:    %s\n", info.Version)
			fmt.Printf("  Git Commit: %s\n", info.GitCommit)
			fmt.Printf("  Built:      %s\n", info.BuildTime)
			fmt.Printf("  Go Version: %s\n", info.GoVersion)
			fmt.Printf("  Platform:   %s\n", info.Platform)
		}
	},
}

func init() {
	versionCmd.Flags().BoolP("verbose", "v", false, "verbose version output")
}
