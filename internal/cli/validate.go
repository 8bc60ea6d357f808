package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file without running the simulation",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		catalog, err := cfg.BuildCatalog()
		if err != nil {
			return err
		}

		recipes := 0
		for _, def := range catalog.Definitions() {
			recipes += len(def.Recipes)
		}
		fmt.Printf("Configuration OK: %d resources, %d recipes, %d terrains, %d-region scenario\n",
			catalog.Len(), recipes, len(cfg.BuildTerrains()), cfg.Scenario.Regions)
		return nil
	},
}
