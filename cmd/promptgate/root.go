package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/davetashner/promptgate/internal/config"
	pglog "github.com/davetashner/promptgate/internal/log"
	"github.com/davetashner/promptgate/internal/registry"
)

// Global flag values.
var (
	verbose    bool
	quiet      bool
	noColor    bool
	logFormat  string
	configFile string
	envFile    string
)

// clientBuilder constructs provider clients for every registry the CLI
// creates. Tests swap it for mocks.
var clientBuilder registry.Builder = registry.DefaultBuilder

// rootCmd is the base command for promptgate.
var rootCmd = &cobra.Command{
	Use:   "promptgate",
	Short: "Route prompts to OpenAI, Claude, Gemini, and Perplexity",
	Long: `promptgate is a multi-provider LLM router. It reads per-provider
API keys and model names from a YAML config file with ${VAR} environment
substitution, keeps one client per provider for the life of the process,
and serves them from the command line, over HTTP, or as MCP tools.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		format := logFormat
		if format == "" && cmd == serveCmd {
			format = pglog.FormatJSON
		}
		pglog.Setup(verbose, quiet, format)

		if noColor {
			color.NoColor = true
		}
		if err := config.LoadDotenv(envFile); err != nil {
			return exitError(ExitConfig, "loading env file: %v", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text or json (default: json for serve, text otherwise)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", fmt.Sprintf("config file (default: $%s or %s)", config.EnvPath, config.FileName))
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the config is read")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(providersCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}

// configPath returns the --config flag value or the default location.
func configPath() string {
	if configFile != "" {
		return configFile
	}
	return config.DefaultPath()
}

// newRegistry returns a registry over the active config file.
func newRegistry() *registry.Registry {
	return registry.New(configPath(), registry.WithBuilder(clientBuilder))
}

// resetFlagSet restores every flag in fs to its default and clears Changed,
// so commands can be executed repeatedly in one process.
func resetFlagSet(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}
