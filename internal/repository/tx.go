package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

type txKey struct{}

type TxManager struct {
	conn PgConnection
}

func NewTxManager(conn PgConnection) *TxManager {
	mustPing(conn, "txManager")
	return &TxManager{conn: conn}
}

func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		// already inside a transaction, join it
		return fn(ctx)
	}
	tx, err := m.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing transaction error: " + err.Error())
	}
	return nil
}

// querier returns the transaction carried by ctx, or conn when there is none.
func querier(ctx context.Context, conn PgConnection) Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return conn
}
