package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/fpang/watermark-manager/internal/app"
	"github.com/fpang/watermark-manager/internal/cli"
	"github.com/fpang/watermark-manager/internal/config"
	"github.com/fpang/watermark-manager/internal/logging"
	"github.com/fpang/watermark-manager/internal/modify"
	"github.com/fpang/watermark-manager/internal/watermark"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// rootCmd is the main Cobra command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "watermark-manager",
	Short: "Adjust an image and add a text or image watermark",
	Long: `Watermark Manager asks which image in the img/ directory to mark, applies one
adjustment (brighter, more contrast, black & white or inverted) and then stamps
a text watermark or overlays a watermark image in the centre. The result is
written next to the input as <name>-with-watermark.<ext>.

All choices are made through interactive prompts; there are no flags.
Settings such as the image directory can be changed with WATERMARK_* environment
variables, a .env file or watermark.yaml in the working directory.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMain,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runMain is the main execution logic called by Cobra.
func runMain(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Init(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	interactive := isTerminal(in)

	logging.NewStartupLogger("watermark-manager").
		CommitHash(commitHash).
		BuildTime(buildTime).
		Feature("interactive", interactive).
		Config("imageDir", cfg.ImageDir).
		Config("quality", strconv.Itoa(cfg.Quality)).
		Config("textColor", cfg.Text.Color).
		Config("opacity", strconv.FormatFloat(cfg.Image.Opacity, 'f', -1, 64)).
		Log()

	stamper, err := watermark.NewTextStamper(cfg.Text.FontSize, cfg.TextColor())
	if err != nil {
		return err
	}
	defer stamper.Close()

	var prompter cli.Prompter
	if interactive {
		prompter = cli.NewTeaPrompter(ctx, in, out)
	} else {
		prompter = cli.NewLinePrompter(in, out)
	}

	runner := app.NewRunner(
		prompter,
		modify.NewModifier(cfg.Quality),
		watermark.NewApplier(stamper, cfg.Quality, cfg.Image.Opacity),
		cfg.ImageDir,
		out,
	)

	if err := runner.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Watermark manager stopped")
		return err
	}
	return nil
}

// isTerminal reports whether r is a terminal. Piped or scripted input gets
// line prompts.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && cli.IsInteractive(f)
}
