package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crateforge/crateforge/internal/template"
	"github.com/crateforge/crateforge/pkg/models"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Inspect the built-in project templates",
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available argument-parser templates",
	Args:  cobra.NoArgs,
	RunE:  runTemplatesList,
}

var templatesShowCmd = &cobra.Command{
	Use:   "show <parser>",
	Short: "Show the files and dependencies of one template",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplatesShow,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesShowCmd)
}

func runTemplatesList(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	for _, variant := range template.Variants() {
		marker := " "
		if variant == template.DefaultVariant {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %s\n", marker, StyleNoun.Render(string(variant)))
	}
	return nil
}

func runTemplatesShow(cmd *cobra.Command, args []string) error {
	set, err := template.Select(models.ArgParser(args[0]))
	if err != nil {
		return fmt.Errorf("unknown template %q: must be one of: clap, docopt", args[0])
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", StyleNoun.Render(string(set.Variant)))
	fmt.Fprintf(out, "  files:\n")
	for _, asset := range []string{set.EntryPoint, set.Runtime, set.ErrorModule} {
		fmt.Fprintf(out, "    %s\n", StyleDim.Render(asset))
	}
	fmt.Fprintf(out, "  dependencies:\n")
	for _, dep := range set.Dependencies {
		fmt.Fprintf(out, "    %s %s\n", dep.Name, StyleDim.Render("(fallback "+dep.Fallback+")"))
	}
	return nil
}
