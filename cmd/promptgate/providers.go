package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/davetashner/promptgate/internal/registry"
)

// providersCmd lists supported providers and checks their config sections.
var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List supported providers and their configuration status",
	Long: `List every supported provider, the config section it reads, the
configured model, and whether the section has the required model and
api_key entries. "basic" is an alias for openai.`,
	Args: cobra.NoArgs,
	RunE: runProviders,
}

func runProviders(cmd *cobra.Command, _ []string) error {
	doc, err := loadConfig()
	if err != nil {
		return err
	}

	okColor := color.New(color.FgGreen)
	badColor := color.New(color.FgRed)

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "PROVIDER\tSECTION\tMODEL\tSTATUS")
	for _, k := range registry.Kinds() {
		name := k.String()
		if k == registry.OpenAI {
			name += " (" + registry.AliasBasic + ")"
		}

		model, status := "-", okColor.Sprint("ready")
		s, err := registry.SettingsFor(doc, k)
		var (
			missing *registry.MissingSettingsError
			invalid *registry.InvalidSettingsError
		)
		switch {
		case err == nil:
			model = s.Model
		case errors.As(err, &missing) && missing.Key != "":
			status = badColor.Sprintf("missing %s", missing.Key)
		case errors.As(err, &missing):
			status = badColor.Sprint("not configured")
		case errors.As(err, &invalid):
			status = badColor.Sprint("invalid")
		default:
			status = badColor.Sprint(err.Error())
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", name, k.Section(), model, status)
	}
	return tw.Flush()
}
