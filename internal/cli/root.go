package cli

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mgpai22/captions/internal/config"
	"github.com/mgpai22/captions/internal/logging"
)

var (
	verbose    bool
	configPath string
	logger     *logging.Logger
	cfg        *config.Config

	// filesystem for caption documents and file output
	appFs afero.Fs = afero.NewOsFs()
)

var rootCmd = &cobra.Command{
	Use:   "captions",
	Short: "Render caption documents as WebVTT or SRT subtitles",
	Long: `Captions turns an ordered list of timed captions into subtitle files.

Captions are read from a JSON or YAML document and written as WebVTT or
SubRip (SRT) to stdout, a local file, or an S3 bucket.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.NewLogger(verbose)

		loaded, err := config.Load(appFs, configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		loaded.ApplyEnv()
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", configPath, err)
		}
		cfg = loaded

		logger.Debugw("Loaded config", "path", configPath)
		return nil
	},
}

func Execute() error {
	_ = godotenv.Load() // best-effort: load .env if present
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", config.ConfigPath(), "Config file path")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
}
