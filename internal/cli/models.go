package cli

import (
	"fmt"
	"strings"

	"github.com/HartBrook/pronghorn/internal/config"
	"github.com/spf13/cobra"
)

// NewModelsCmd creates the models command.
func NewModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the target model catalog",
		Long: `Lists the models pronghorn can score against, with their pricing and
strength tags. Pricing can be overridden in the config file, e.g. for
negotiated rates:

  pricing:
    - model: sonnet
      input_price: 2.40`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			catalog := cfg.Catalog()
			defaultID := catalog.Default().ID

			fmt.Println()
			for _, m := range catalog.All() {
				marker := " "
				if m.ID == defaultID {
					marker = info("*")
				}
				fmt.Printf("%s %s %s\n", marker, m.DisplayName, dim(fmt.Sprintf("(%s)", m.ID)))
				printInfo("Pricing", fmt.Sprintf("$%.2f in / $%.2f out per million tokens", m.InputPrice, m.OutputPrice))
				printInfo("Strengths", strings.Join(m.Strengths, ", "))
				fmt.Println()
			}
			fmt.Println(dim("* default model"))

			return nil
		},
	}
}
