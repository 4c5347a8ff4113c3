package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/arifer/undock-compose/internal/template"
	"github.com/arifer/undock-compose/models"
)

var inspectOutputFormat string

var inspectCmd = &cobra.Command{
	Use:   "inspect <template-file>",
	Short: "Show the parsed contents of a template",
	Long: `Parse a template and print what the conversion would work from:
container name, image, network settings and every port, volume, device,
variable and label entry in template order.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tpl, err := template.ParseFile(args[0])
		if err != nil {
			return err
		}

		if inspectOutputFormat == "json" {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(tpl)
		}

		fmt.Printf("Template Information:\n")
		fmt.Printf("  Name:        %s\n", tpl.Name)
		fmt.Printf("  Repository:  %s\n", tpl.Repository)
		if tpl.Network != "" {
			fmt.Printf("  Network:     %s\n", tpl.Network)
		}
		if tpl.IsPrivileged() {
			fmt.Printf("  Privileged:  true\n")
		}
		if tpl.Category != "" {
			fmt.Printf("  Category:    %s\n", tpl.Category)
		}
		if tpl.Support != "" {
			fmt.Printf("  Support:     %s\n", tpl.Support)
		}
		if tpl.ExtraParams != "" {
			fmt.Printf("  ExtraParams: %s\n", tpl.ExtraParams)
		}

		if len(tpl.Configs) == 0 {
			fmt.Printf("\nNo config entries.\n")
			return nil
		}

		fmt.Printf("\nConfig Entries:\n")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  TYPE\tNAME\tTARGET\tVALUE\tMODE")
		for _, c := range tpl.Configs {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n",
				c.Type, c.Name, c.Target, displayValue(c), c.Mode)
		}
		w.Flush()

		return nil
	},
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectOutputFormat, "output", "o", "table", "Output format (table, json)")
}

// displayValue masks values the template marks as sensitive.
func displayValue(c models.TemplateConfig) string {
	if c.Mask == "true" {
		return "********"
	}
	return c.ResolvedValue()
}
