package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-PetHotelService/internal/cli"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "pethotel",
		Short: "Pet hotel booking and room capacity service",
		Long: `pethotel runs the booking API of a pet hotel and offers admin commands
for rooms, migrations and daily capacity.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "path to the TOML config file")

	rootCmd.AddCommand(cli.ServeCmd(&configPath))
	rootCmd.AddCommand(cli.MigrateCmd(&configPath))
	rootCmd.AddCommand(cli.RoomsCmd(&configPath))
	rootCmd.AddCommand(cli.CapacityCmd(&configPath))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
