//go:build container

// Package testhelpers starts a throwaway Postgres for tests that need real
// row locks and transactions.
package testhelpers

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"school-erp/internal/shared/schema"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Postgres struct {
	Gorm *gorm.DB
	SQL  *sql.DB
}

// StartPostgres runs postgres:16-alpine, applies the schema and registers
// cleanup on t.
func StartPostgres(t *testing.T) *Postgres {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "payroll",
			"POSTGRES_PASSWORD": "payroll",
			"POSTGRES_DB":       "payroll",
		},
		WaitingFor: wait.ForAll(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			wait.ForListeningPort("5432/tcp"),
		).WithDeadline(90 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminate postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("container port: %v", err)
	}

	dsn := fmt.Sprintf("host=%s port=%s user=payroll password=payroll dbname=payroll sslmode=disable", host, port.Port())
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open gorm: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := schema.Apply(ctx, sqlDB); err != nil {
		t.Fatalf("apply schema: %v", err)
	}

	return &Postgres{Gorm: gdb, SQL: sqlDB}
}

// SeedEmployee inserts an employee holding role with a pay profile and
// returns the employee id. A nil taxRate leaves the profile on the default.
func SeedEmployee(t *testing.T, db *sql.DB, name, role, annual, fixed string, taxRate *string) string {
	t.Helper()
	ctx := context.Background()

	var roleID string
	err := db.QueryRowContext(ctx, `
		INSERT INTO roles (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id::text`, role).Scan(&roleID)
	if err != nil {
		t.Fatalf("seed role: %v", err)
	}

	var employeeID string
	if err := db.QueryRowContext(ctx,
		`INSERT INTO employees (full_name) VALUES ($1) RETURNING id::text`, name,
	).Scan(&employeeID); err != nil {
		t.Fatalf("seed employee: %v", err)
	}

	if _, err := db.ExecContext(ctx,
		`INSERT INTO employee_roles (employee_id, role_id) VALUES ($1, $2)`, employeeID, roleID,
	); err != nil {
		t.Fatalf("seed employee role: %v", err)
	}

	if _, err := db.ExecContext(ctx, `
		INSERT INTO employee_pay_profiles (employee_id, base_annual_salary, fixed_deductions, tax_rate)
		VALUES ($1, $2, $3, $4)`, employeeID, annual, fixed, taxRate,
	); err != nil {
		t.Fatalf("seed pay profile: %v", err)
	}

	return employeeID
}
