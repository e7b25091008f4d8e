package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ivan-guerra/rot13/internal/buildinfo"
	"github.com/ivan-guerra/rot13/internal/domain"
	"github.com/ivan-guerra/rot13/internal/infra/config"
	"github.com/ivan-guerra/rot13/internal/infra/logger"
	"github.com/ivan-guerra/rot13/internal/infra/textsink"
	"github.com/ivan-guerra/rot13/internal/infra/textsource"
	"github.com/ivan-guerra/rot13/internal/ports"
	"github.com/ivan-guerra/rot13/internal/usecase"
)

func Execute() {
	if err := execute(newRootCmd()); err != nil {
		os.Exit(1)
	}
}

// execute runs cmd and reports any failure on its stderr.
func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		renderError(cmd.ErrOrStderr(), err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		logFile    string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "rot13 [text]",
		Short: "Apply the ROT13 cipher to text",
		Long: "rot13 rotates every ASCII letter 13 places within its case and leaves\n" +
			"everything else untouched. The text comes from the argument, or from\n" +
			"standard input when no argument is given.",
		Example: "  rot13 \"Hello, World!\"\n" +
			"  echo \"Hello, World!\" | rot13",
		Version:       buildinfo.Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.ResolvePath(configPath, os.Getenv))
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-file") {
				cfg.Log.File = logFile
			}
			if debug {
				cfg.Log.Debug = true
			}

			cleanup, err := logger.Setup(logger.Config{
				File:  cfg.Log.File,
				Debug: cfg.Log.Debug,
			})
			if err != nil {
				return &domain.OpError{
					Op:   "logger.setup",
					Kind: domain.KindLogSetup,
					Path: cfg.Log.File,
					Err:  err,
				}
			}
			defer func() { _ = cleanup() }()

			uc := usecase.NewTransformText(
				sourceFor(args, cmd.InOrStdin()),
				textsink.NewWriter(cmd.OutOrStdout(), cfg.Output.TrailingNewline),
				usecase.WithLogger(logger.L()),
			)
			return uc.Execute(cmd.Context())
		},
	}

	cmd.SetVersionTemplate(buildinfo.String() + "\n")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file (default $"+config.EnvVar+")")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write JSON logs to this file")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable verbose logging (requires a log file)")
	return cmd
}

// sourceFor uses the positional argument when present and stdin otherwise.
func sourceFor(args []string, stdin io.Reader) ports.TextSource {
	if len(args) == 1 {
		return textsource.Arg(args[0])
	}
	return textsource.NewReader(stdin)
}
