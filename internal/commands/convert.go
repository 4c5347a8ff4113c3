package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arifer/undock-compose/internal/compose"
	"github.com/arifer/undock-compose/internal/mapper"
	"github.com/arifer/undock-compose/internal/template"
)

var (
	includeLabels bool
	hostEnv       bool
	forceWrite    bool
)

func init() {
	rootCmd.Flags().BoolVarP(&includeLabels, "labels", "l", false, "Preserve unRAID template metadata as service labels")
	rootCmd.Flags().BoolVar(&hostEnv, "host-env", false, "Append the unRAID host environment variables (TZ, HOST_OS, ...)")
	rootCmd.Flags().BoolVarP(&forceWrite, "force", "f", false, "Overwrite the output file if it already exists")
}

func runConvert(cmd *cobra.Command, args []string) error {
	templatePath := args[0]

	outputPath := compose.DefaultOutputPath(templatePath, cfg.Convert.OutputName)
	if len(args) == 2 {
		outputPath = args[1]
	}

	tpl, err := template.ParseFile(templatePath)
	if err != nil {
		return err
	}

	file := mapper.Map(tpl, convertOptions(cmd))

	if err := compose.WriteFile(outputPath, file, forceWrite); err != nil {
		return err
	}

	fmt.Printf("✓ Converted %s\n", templatePath)
	fmt.Printf("  Service: %s\n", tpl.Name)
	fmt.Printf("  Output:  %s\n", outputPath)
	return nil
}

// convertOptions merges the configuration defaults with the flags of this
// invocation. A flag that was set on the command line wins over config.
func convertOptions(cmd *cobra.Command) mapper.Options {
	opts := mapper.Options{
		IncludeLabels:  cfg.Convert.IncludeLabels,
		HostEnv:        cfg.Convert.HostEnv,
		LabelPrefix:    cfg.Convert.LabelPrefix,
		ComposeVersion: cfg.Convert.ComposeVersion,
		Timezone:       cfg.Convert.Timezone,
	}
	if cmd.Flags().Changed("labels") {
		opts.IncludeLabels = includeLabels
	}
	if cmd.Flags().Changed("host-env") {
		opts.HostEnv = hostEnv
	}
	return opts
}
