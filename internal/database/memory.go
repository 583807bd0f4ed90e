package database

import (
	"fmt"

	"chai/internal/config"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// OpenMemory opens a private, migrated in-memory SQLite database. Each call
// gets its own named database so tests sharing a process do not see each
// other's rows.
func OpenMemory(log *logrus.Logger) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	return OpenAndMigrate(config.DatabaseConfig{Driver: "sqlite", DSN: dsn, LogLevel: "silent"}, log)
}
