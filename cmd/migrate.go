package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/logging"
	"github.com/TagoorPJ/SEVA-SADHANA-RAG-POC/internal/storage"
)

var migrateDownTo int

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().IntVar(&migrateDownTo, "down-to", -1, "Roll back to this schema version instead of migrating up")

	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	store, err := storage.NewStore(appConfig.Database.Path, storage.Options{
		QueryTimeout: appConfig.QueryTimeoutDuration(),
		MaxRows:      appConfig.Database.MaxRows,
	})
	if err != nil {
		return err
	}
	defer store.Close()

	mgr := storage.NewMigrationManager(store.DB())

	if migrateDownTo >= 0 {
		err := logging.LoggerMiddleware("migrate_down", func() error {
			return mgr.MigrateDown(cmd.Context(), migrateDownTo)
		})
		if err != nil {
			return err
		}

		fmt.Printf("Rolled back to schema version %d.\n", migrateDownTo)

		return nil
	}

	err = logging.LoggerMiddleware("migrate_up", func() error {
		return mgr.MigrateUp(cmd.Context())
	})
	if err != nil {
		return err
	}

	fmt.Println("Database schema is up to date.")

	return nil
}
