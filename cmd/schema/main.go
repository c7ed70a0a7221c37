package main

import (
	"os"

	"go-stock-manager/internal/config"
	"go-stock-manager/internal/logging"
	"go-stock-manager/internal/repository"
	"go-stock-manager/pkg/database"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug(".env file not found, relying on system env")
	}

	var secretsFile string
	var withForeignKey bool

	root := &cobra.Command{
		Use:           "schema",
		Short:         "Create or adjust the stock manager tables",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&secretsFile, "secrets", os.Getenv("SECRETS_FILE"), "path to the secrets file")

	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Create the category, product and issue journal tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(secretsFile, func(db *gorm.DB, tables repository.Tables, log *logrus.Logger) error {
				if err := repository.Migrate(db, tables, withForeignKey); err != nil {
					return err
				}
				log.WithFields(logrus.Fields{
					"products":    tables.Products,
					"categories":  tables.Categories,
					"foreign_key": withForeignKey,
				}).Info("schema ready")
				return nil
			})
		},
	}
	migrate.Flags().BoolVar(&withForeignKey, "foreign-key", true, "add the products -> categories foreign key")

	dropForeignKey := &cobra.Command{
		Use:   "drop-foreign-key",
		Short: "Remove the products -> categories foreign key (the product view falls back to raw rows)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(secretsFile, func(db *gorm.DB, tables repository.Tables, log *logrus.Logger) error {
				dropped, err := repository.DropCategoryForeignKey(db, tables)
				if err != nil {
					return err
				}
				log.WithField("dropped", dropped).Info("foreign key removed")
				return nil
			})
		},
	}

	root.AddCommand(migrate, dropForeignKey)

	if err := root.Execute(); err != nil {
		logrus.Fatalf("❌ %v", err)
	}
}

func withStore(secretsFile string, fn func(db *gorm.DB, tables repository.Tables, log *logrus.Logger) error) error {
	cfg, err := config.Load(secretsFile)
	if err != nil {
		return err
	}
	log := logging.Setup(cfg.LogLevel, cfg.LogFormat)

	db, err := database.Connect(database.Options{Endpoint: cfg.StoreURL, Key: cfg.StoreKey, Log: log})
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	return fn(db, repository.Tables{Products: cfg.ProductsTable, Categories: cfg.CategoriesTable}, log)
}
