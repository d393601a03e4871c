package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
)

type Conn interface {
	Queryer
	Acquire(context.Context) (*sql.Conn, error)
	Close() error
	Ping(context.Context) error
}

var _ Conn = (*Connection)(nil)

// Connection é o pool do processo, aberto uma vez na inicialização
type Connection struct {
	*sql.DB
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Connection{DB: db}, nil
}

// NewFromDB envolve um *sql.DB já aberto (testes de integração)
func NewFromDB(db *sql.DB) *Connection {
	return &Connection{DB: db}
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// Acquire reserva uma conexão do pool para consultas sequenciais.
// Quem chama deve devolvê-la com Close.
func (c *Connection) Acquire(ctx context.Context) (*sql.Conn, error) {
	return c.DB.Conn(ctx)
}

// WithConn executa fn com uma conexão reservada e a devolve ao pool em qualquer caminho de saída
func (c *Connection) WithConn(ctx context.Context, fn func(Queryer) error) error {
	conn, err := c.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	return fn(conn)
}
