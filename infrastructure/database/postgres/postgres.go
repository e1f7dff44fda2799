package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-visualiser/internal/config"
)

const (
	connectTimeout = 10 * time.Second

	// Só a carga inicial e o script de migração usam o banco
	maxOpenConns = 2
)

type Conn interface {
	Queryer
	Close() error
	Ping(context.Context) error
	RunInTransaction(context.Context, TxFunc) error
}

// TxFunc recebe a transação aberta por RunInTransaction
type TxFunc func(tx *sql.Tx) error

type Connection struct {
	*sql.DB
}

// NewConnection abre o pool e só retorna depois do banco responder
func NewConnection(ctx context.Context, cfg config.Database) (*Connection, error) {
	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir conexão")
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetConnMaxIdleTime(time.Minute)

	conn := &Connection{DB: db}
	if err := conn.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return conn, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	return errors.Wrap(c.DB.PingContext(ctx), "banco não respondeu")
}

// RunInTransaction faz commit se fn retornar nil e rollback caso contrário
func (c *Connection) RunInTransaction(ctx context.Context, fn TxFunc) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "erro ao iniciar transação")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Wrapf(err, "rollback falhou: %v", rbErr)
		}
		return err
	}

	return errors.Wrap(tx.Commit(), "erro no commit")
}
