package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mgpai22/captions/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the captions config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		exists, err := afero.Exists(appFs, configPath)
		if err != nil {
			return fmt.Errorf("failed to check config: %w", err)
		}
		if exists && !force {
			return fmt.Errorf("config already exists: %s (use --force to overwrite)", configPath)
		}
		if err := config.DefaultConfig().Save(appFs, configPath); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Config written: %s\n", configPath)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective config, including environment overrides",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	configInitCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}
