package maintenance

import (
	"os"

	"chai/internal/config"
	"chai/internal/database"
	"chai/internal/logger"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// BindDatabaseFlags registers --db and --driver on cmd and binds them to the
// DB_DSN and DB_DRIVER settings. The returned loader reads the configuration
// once flags have been parsed.
func BindDatabaseFlags(cmd *cobra.Command) func() (*config.Config, error) {
	v := config.NewViper()
	flags := cmd.PersistentFlags()
	flags.String("db", "", "database DSN (default from DB_DSN, else db.sqlite3)")
	flags.String("driver", "", "database driver: sqlite or postgres (default from DB_DRIVER)")
	_ = v.BindPFlag("DB_DSN", flags.Lookup("db"))
	_ = v.BindPFlag("DB_DRIVER", flags.Lookup("driver"))
	return func() (*config.Config, error) {
		return config.FromViper(v)
	}
}

// OpenStore connects to the configured database and applies migrations.
// Tool logs go to stderr so they never mix with query output.
func OpenStore(cfg *config.Config) (*gorm.DB, *logrus.Logger, error) {
	log := logger.NewWithWriter(cfg.Log, os.Stderr)
	db, err := database.OpenAndMigrate(cfg.Database, log)
	if err != nil {
		return nil, nil, err
	}
	return db, log, nil
}
