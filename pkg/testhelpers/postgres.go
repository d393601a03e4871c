// Package testhelpers sobe um PostgreSQL descartável para os testes de integração
package testhelpers

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/database/postgres"
)

const postgresImage = "postgres:16-alpine"

type TestDB struct {
	Container testcontainers.Container
	Conn      *postgres.Connection
	DSN       string
}

var (
	sharedTestDB     *TestDB
	sharedTestDBOnce sync.Once
	sharedTestDBErr  error
)

// GetTestDB retorna o banco compartilhado por todos os testes da execução, já migrado.
// Em -short o teste é ignorado (requer Docker).
func GetTestDB(t *testing.T) *TestDB {
	t.Helper()

	if testing.Short() {
		t.Skip("Ignorando teste de integração em modo short (requer Docker)")
	}

	sharedTestDBOnce.Do(func() {
		sharedTestDB, sharedTestDBErr = setupTestDB()
	})

	if sharedTestDBErr != nil {
		t.Fatalf("Falha ao preparar banco de teste: %v", sharedTestDBErr)
	}

	return sharedTestDB
}

func setupTestDB() (*TestDB, error) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        postgresImage,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "dashboard_test",
			"POSTGRES_USER":     "dashboard",
			"POSTGRES_PASSWORD": "test_password",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao iniciar container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao obter host do container: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("falha ao obter porta do container: %w", err)
	}

	dsn := fmt.Sprintf("postgres://dashboard:test_password@%s:%s/dashboard_test?sslmode=disable", host, port.Port())

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir conexão: %w", err)
	}

	for i := 0; i < 10; i++ {
		if err = db.PingContext(ctx); err == nil {
			break
		}
		time.Sleep(500 * time.Millisecond)
	}
	if err != nil {
		return nil, fmt.Errorf("banco de teste não respondeu: %w", err)
	}

	if err := postgres.RunMigrations(ctx, db, migrationsPath()); err != nil {
		return nil, err
	}

	return &TestDB{
		Container: container,
		Conn:      postgres.NewFromDB(db),
		DSN:       dsn,
	}, nil
}

// Reset limpa as tabelas de negócio entre testes
func (db *TestDB) Reset(t *testing.T) {
	t.Helper()

	_, err := db.Conn.ExecContext(context.Background(),
		"TRUNCATE line_items, orders, products, people, companies RESTART IDENTITY CASCADE")
	if err != nil {
		t.Fatalf("Falha ao limpar tabelas: %v", err)
	}
}

// Exec executa SQL de preparação de dados
func (db *TestDB) Exec(t *testing.T, query string, args ...interface{}) {
	t.Helper()

	if _, err := db.Conn.ExecContext(context.Background(), query, args...); err != nil {
		t.Fatalf("Falha ao executar %q: %v", query, err)
	}
}

func migrationsPath() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "migrations")
}
