package commands

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/ariahq/aria/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Manage aria configuration.

Subcommands:
  get     Show the effective configuration
  path    Show the config file path
  init    Write a default config file`,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		enc := toml.NewEncoder(os.Stdout)
		return enc.Encode(cfg)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(config.ConfigPath())
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file and create the state directories",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(config.ConfigPath()); err == nil {
			return fmt.Errorf("config already exists at %s", config.ConfigPath())
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := config.EnsureDirs(); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return err
		}

		fmt.Printf("Wrote %s\n", config.ConfigPath())
		return nil
	},
}
