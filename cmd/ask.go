package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SuperMag99/FootPrintX/internal/ai"
	"github.com/SuperMag99/FootPrintX/internal/render"
)

func (a *app) askCmd() *cobra.Command {
	var timeout time.Duration
	c := &cobra.Command{
		Use:   "ask <question...>",
		Short: "Ask the AI assistant for help with a search",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.cfg.AIEnabled() {
				return fmt.Errorf("%w: add an ai section to your config or set FOOTPRINTX_AI_KEY", ai.ErrNotConfigured)
			}
			assistant, err := ai.New(cmd.Context(), a.cfg.AI, a.cfg.AIKey())
			if err != nil {
				return fmt.Errorf("creating assistant: %w", err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			answer := ai.Consult(ctx, assistant, strings.Join(args, " "), a.logger)

			render.WriteDisclaimer(cmd.ErrOrStderr())
			fmt.Fprintln(cmd.OutOrStdout(), answer)
			return nil
		},
	}
	c.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "give up on the assistant after this long")
	return c
}

func (a *app) enginesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "engines",
		Short: "List search engines and their URL templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return render.WriteEngines(cmd.OutOrStdout(), a.cfg.SearchTemplates())
		},
	}
}
