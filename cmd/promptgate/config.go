package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/davetashner/promptgate/internal/config"
	"github.com/davetashner/promptgate/internal/redact"
)

// Config command flags.
var configShowSecrets bool

// configCmd is the parent command for config subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the resolved promptgate configuration",
	Long: `Inspect the resolved promptgate configuration.

promptgate reads conf.yaml from the working directory, or the file named by
$PROMPTGATE_CONFIG or --config. ${VAR} placeholders are replaced with
environment values; unset variables are left as written. Values under
keys such as api_key are masked unless --show-secrets is given.`,
}

// configShowCmd prints the whole resolved document.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved configuration as YAML",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

// configGetCmd retrieves a configuration value by dot-notation key path.
var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a resolved configuration value by dot-notation key path.

Examples:
  promptgate config get CLAUDE_MODEL.model
  promptgate config get GEMINI_MODEL
  promptgate config get --show-secrets BASIC_MODEL.api_key`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

// configListCmd lists every leaf value in dot notation.
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

func init() {
	for _, c := range []*cobra.Command{configShowCmd, configGetCmd, configListCmd} {
		c.Flags().BoolVar(&configShowSecrets, "show-secrets", false, "print credential values unmasked")
		configCmd.AddCommand(c)
	}
}

// resetConfigFlags resets config command flags for testing.
func resetConfigFlags() {
	for _, c := range []*cobra.Command{configShowCmd, configGetCmd, configListCmd} {
		resetFlagSet(c.Flags())
	}
}

func loadConfig() (config.Document, error) {
	doc, err := config.Load(configPath())
	if err != nil {
		return nil, exitError(ExitConfig, "%v", err)
	}
	return doc, nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	doc, err := loadConfig()
	if err != nil {
		return err
	}
	return config.Write(cmd.OutOrStdout(), maskSecrets("", map[string]any(doc)))
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	keyPath := args[0]

	doc, err := loadConfig()
	if err != nil {
		return err
	}
	val, err := config.Lookup(doc, keyPath)
	if err != nil {
		return exitError(ExitInvalidArgs, "%v", err)
	}

	parts := strings.Split(keyPath, ".")
	return printValue(cmd, maskSecrets(parts[len(parts)-1], val))
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	doc, err := loadConfig()
	if err != nil {
		return err
	}
	flat := config.FlattenMap(doc, "")
	if len(flat) == 0 {
		_, _ = fmt.Fprintf(w, "No configuration set in %s.\n", configPath())
		return nil
	}

	keyColor := color.New(color.FgCyan)
	for _, k := range config.SortedKeys(flat) {
		leaf := k[strings.LastIndex(k, ".")+1:]
		_, _ = fmt.Fprintf(w, "%s = %v\n", keyColor.Sprint(k), maskSecrets(leaf, flat[k]))
	}
	return nil
}

// printValue outputs a value: scalars as plain text, maps/slices as YAML.
func printValue(cmd *cobra.Command, val any) error {
	switch v := val.(type) {
	case map[string]any, []any:
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprint(cmd.OutOrStdout(), string(data))
	default:
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), v)
	}
	return nil
}

// maskSecrets returns a copy of v with values under credential-looking keys
// replaced by the redaction placeholder. key is the name v is stored under.
func maskSecrets(key string, v any) any {
	if configShowSecrets {
		return v
	}
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, sub := range t {
			out[k] = maskSecrets(k, sub)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, sub := range t {
			ks := fmt.Sprint(k)
			out[ks] = maskSecrets(ks, sub)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, sub := range t {
			out[i] = maskSecrets(key, sub)
		}
		return out
	case string:
		if t != "" && isSecretKey(key) {
			return redact.Placeholder
		}
		return redact.String(t)
	default:
		return v
	}
}

func isSecretKey(key string) bool {
	k := strings.ToLower(key)
	switch k {
	case "api_key", "apikey", "token", "secret", "password":
		return true
	}
	return strings.HasSuffix(k, "_key") || strings.HasSuffix(k, "_token") || strings.HasSuffix(k, "_secret")
}
