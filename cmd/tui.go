package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/SuperMag99/FootPrintX/internal/ai"
	"github.com/SuperMag99/FootPrintX/internal/tui"
)

var errNoTerminal = errors.New("the interactive interface needs a terminal; try `footprintx instagram <handle>` or `footprintx --help`")

func (a *app) runTUI(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTerminal
	}

	assistant := a.newAssistant(cmd.Context())

	a.logger.Info("starting tui", zap.String("version", version))
	if err := tui.Run(tui.RunOpts{
		Cfg:       a.cfg,
		Assistant: assistant,
		Logger:    a.logger,
		Version:   version,
	}); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}

// newAssistant returns nil when AI is not configured or the client cannot be
// built; the interface then shows a setup hint instead.
func (a *app) newAssistant(ctx context.Context) ai.Assistant {
	if !a.cfg.AIEnabled() {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	assistant, err := ai.New(ctx, a.cfg.AI, a.cfg.AIKey())
	if err != nil {
		a.logger.Warn("assistant unavailable", zap.Error(err))
		return nil
	}
	return assistant
}
