package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arifer/undock-compose/internal/template"
	"github.com/arifer/undock-compose/internal/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate <template-file>",
	Short: "Validate a template without converting it",
	Long: `Validate an unRAID template file against the conversion rules.

All field-level problems are reported at once, unlike conversion, which
stops at the first failure.

Examples:
  undock-compose validate my-gitea.xml`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	filename := args[0]

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	tpl, err := template.Decode(data)
	if err != nil {
		return err
	}

	result := validation.New().ValidateTemplate(tpl)

	if result.Valid {
		fmt.Println("✓ Template is valid")
		return nil
	}

	fmt.Println("✗ Validation failed:")
	for _, e := range result.Errors {
		if e.Value != nil {
			fmt.Printf("  - %s: %s (value: %v)\n", e.Field, e.Message, e.Value)
		} else {
			fmt.Printf("  - %s: %s\n", e.Field, e.Message)
		}
	}

	return fmt.Errorf("validation failed")
}
