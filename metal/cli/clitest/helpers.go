// Package clitest holds shared fixtures for the admin panel tests.
package clitest

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/carmegar/blogpage/database"
	"github.com/carmegar/blogpage/metal/env"
)

// MakeTestConnection opens a shared in-memory database and migrates the
// given models. The database resets once the last test connection closes.
func MakeTestConnection(t *testing.T, models ...interface{}) *database.Connection {
	t.Helper()

	driver, err := gorm.Open(
		sqlite.Open("file::memory:?cache=shared"),
		&gorm.Config{SkipDefaultTransaction: true},
	)

	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := driver.DB()

	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}

	if _, err = sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	if len(models) > 0 {
		if err = driver.AutoMigrate(models...); err != nil {
			t.Fatalf("migrate: %v", err)
		}
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return database.NewConnectionFromGorm(driver)
}

func MakeTestEnv() *env.Environment {
	return &env.Environment{
		App: env.AppEnvironment{
			Name: "blogpage-test",
			Type: "local",
			URL:  "https://blogpage.test",
		},
	}
}
