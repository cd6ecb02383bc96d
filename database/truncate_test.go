package database

import (
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/carmegar/blogpage/metal/env"
)

func newMockConnection(t *testing.T) (*Connection, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}

	dialector := postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	})

	driver, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("open gorm: %v", err)
	}

	t.Cleanup(func() { _ = sqlDB.Close() })

	return NewConnectionFromGorm(driver), mock
}

func localEnv() *env.Environment {
	return &env.Environment{App: env.AppEnvironment{Type: "local"}}
}

// expectTruncation queues the table-existence probe and, when the table is
// reported present, the truncate statement itself.
func expectTruncation(mock sqlmock.Sqlmock, table string, exists bool, execErr error) {
	probe := regexp.QuoteMeta("SELECT count(*) FROM information_schema.tables WHERE table_schema = CURRENT_SCHEMA() AND table_name = $1 AND table_type = $2")

	count := int64(0)
	if exists {
		count = 1
	}

	mock.ExpectQuery(probe).
		WithArgs(table, "BASE TABLE").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(count))

	if !exists {
		return
	}

	stmt := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE;", table)
	expectation := mock.ExpectExec(regexp.QuoteMeta(stmt))

	if execErr != nil {
		expectation.WillReturnError(execErr)
		return
	}

	expectation.WillReturnResult(sqlmock.NewResult(0, 0))
}

func TestTruncateClearsTablesInReverseOrder(t *testing.T) {
	conn, mock := newMockConnection(t)

	tables := GetSchemaTables()
	for i := len(tables) - 1; i >= 0; i-- {
		expectTruncation(mock, tables[i], true, nil)
	}

	if err := NewTruncate(conn, localEnv()).Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTruncateSkipsMissingTables(t *testing.T) {
	conn, mock := newMockConnection(t)

	tables := GetSchemaTables()
	for i := len(tables) - 1; i >= 0; i-- {
		expectTruncation(mock, tables[i], false, nil)
	}

	if err := NewTruncate(conn, localEnv()).Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTruncateToleratesUndefinedRelations(t *testing.T) {
	conn, mock := newMockConnection(t)

	undefined := errors.New(`ERROR: relation "post_tags" does not exist (SQLSTATE 42P01)`)

	tables := GetSchemaTables()
	for i := len(tables) - 1; i >= 0; i-- {
		var execErr error
		if tables[i] == "post_tags" {
			execErr = undefined
		}

		expectTruncation(mock, tables[i], true, execErr)
	}

	if err := NewTruncate(conn, localEnv()).Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
}

func TestTruncateAggregatesFailures(t *testing.T) {
	conn, mock := newMockConnection(t)

	tables := GetSchemaTables()
	for i := len(tables) - 1; i >= 0; i-- {
		var execErr error
		if tables[i] == "users" {
			execErr = errors.New("truncate boom")
		}

		expectTruncation(mock, tables[i], true, execErr)
	}

	err := NewTruncate(conn, localEnv()).Execute()

	if err == nil || !regexp.MustCompile(`truncate table users`).MatchString(err.Error()) {
		t.Fatalf("expected users failure, got %v", err)
	}
}

func TestTruncatePanicsInProduction(t *testing.T) {
	conn, _ := newMockConnection(t)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()

	production := &env.Environment{App: env.AppEnvironment{Type: "production"}}
	_ = NewTruncate(conn, production).Execute()
}
