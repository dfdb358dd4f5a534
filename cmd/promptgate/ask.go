package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/davetashner/promptgate/internal/llm"
	"github.com/davetashner/promptgate/internal/registry"
)

// Ask command flags.
var (
	askProvider    string
	askRole        string
	askSystem      string
	askMaxTokens   int
	askTemperature float64
)

// askCmd sends one prompt to a provider and prints the reply.
var askCmd = &cobra.Command{
	Use:   "ask [prompt...]",
	Short: "Send a prompt to an LLM provider",
	Long: `Send a prompt to one of the configured providers and print the reply.

The prompt is the space-joined arguments, or stdin when no arguments are
given. --role picks the provider an agent role maps to (coordinator and
planner use openai, researcher uses perplexity, coder uses gemini, and
everything else uses basic) unless --provider is set explicitly.

Examples:
  promptgate ask "Summarize the CAP theorem"
  promptgate ask -p claude --system "Answer in one line" "What is Go?"
  echo "Find recent papers on RAG" | promptgate ask --role researcher`,
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askProvider, "provider", "p", registry.AliasBasic, "provider: openai, basic, claude, gemini, perplexity")
	askCmd.Flags().StringVar(&askRole, "role", "", "agent role used to pick the provider when --provider is not set")
	askCmd.Flags().StringVar(&askSystem, "system", "", "system prompt")
	askCmd.Flags().IntVar(&askMaxTokens, "max-tokens", 0, "response length limit (0 = provider default)")
	askCmd.Flags().Float64Var(&askTemperature, "temperature", 0, "sampling temperature (unset = provider default)")
}

// resetAskFlags resets ask command flags for testing.
func resetAskFlags() {
	resetFlagSet(askCmd.Flags())
}

func runAsk(cmd *cobra.Command, args []string) error {
	if askMaxTokens < 0 {
		return exitError(ExitInvalidArgs, "--max-tokens must be non-negative, got %d", askMaxTokens)
	}

	prompt, err := readPrompt(cmd, args)
	if err != nil {
		return err
	}

	name := askProvider
	if askRole != "" && !cmd.Flags().Changed("provider") {
		name = registry.RoleProvider(askRole)
	}
	if _, err := registry.ParseKind(name); err != nil {
		return exitError(ExitInvalidArgs, "%v", err)
	}

	client, err := newRegistry().Client(name)
	if err != nil {
		return classify(err)
	}

	req := llm.Request{
		Prompt:       prompt,
		SystemPrompt: askSystem,
		MaxTokens:    askMaxTokens,
	}
	if cmd.Flags().Changed("temperature") {
		t := askTemperature
		req.Temperature = &t
	}

	resp, err := client.Complete(cmd.Context(), req)
	if err != nil {
		return exitError(ExitProvider, "%s: %v", name, err)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), resp.Content)
	return nil
}

// readPrompt joins args, falling back to stdin.
func readPrompt(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		prompt := strings.TrimSpace(strings.Join(args, " "))
		if prompt == "" {
			return "", exitError(ExitInvalidArgs, "prompt is empty")
		}
		return prompt, nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", exitError(ExitInvalidArgs, "reading prompt from stdin: %v", err)
	}
	prompt := strings.TrimSpace(string(data))
	if prompt == "" {
		return "", exitError(ExitInvalidArgs, "no prompt given: pass it as arguments or on stdin")
	}
	return prompt, nil
}
