// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newValidateCommand() *cobra.Command {
	var printYAML bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a run description",
		Example: `  # Validate a run file
  ozsolve validate -c argon.yaml

  # Print the resolved description, defaults included
  ozsolve validate --print`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log.Info().Str("config", configPath).Msg("configuration is valid")

			if printYAML {
				data, err := cfg.Marshal()
				if err != nil {
					return fmt.Errorf("render config: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(data)

				return err
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&printYAML, "print", false, "print the resolved configuration as YAML")

	return cmd
}
