package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-PetHotelService/internal/infra/storage/migrations"
)

// MigrateCmd применяет SQL миграции
func MigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			env, err := bootstrap(ctx, bootstrapOptions{configPath: *configPath})
			if err != nil {
				return err
			}
			defer env.Close()

			applied, err := migrations.NewMigrator(env.storage.DB, env.storage.Tx, env.log).Up(ctx)
			if err != nil {
				return err
			}

			if len(applied) == 0 {
				fmt.Println("Schema is up to date")
				return nil
			}
			for _, version := range applied {
				fmt.Printf("%s %s\n", color.New(color.FgGreen).Sprint("APPLIED"), version)
			}
			return nil
		},
	}
}
