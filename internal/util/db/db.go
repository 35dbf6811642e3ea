package db

import (
	"context"
	"database/sql"

	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/pkg/errors"

	"github.com/tesserex/custody/internal/util"
)

// TxFn is a function that will be called with an initialized transaction object
// that can be used for executing statements and queries against a database.
type TxFn func(boil.ContextExecutor) error

// WithTransaction creates a new transaction and handles rollback/commit based on the
// error object returned by the TxFn closure.
func WithTransaction(ctx context.Context, db *sql.DB, fn TxFn) error {
	return WithConfiguredTransaction(ctx, db, nil, fn)
}

// WithConfiguredTransaction creates a new transaction with the provided options and handles
// rollback/commit based on the error object returned by the TxFn closure.
func WithConfiguredTransaction(ctx context.Context, db *sql.DB, options *sql.TxOptions, fn TxFn) error {
	tx, err := db.BeginTx(ctx, options)
	if err != nil {
		util.LogFromContext(ctx).Warn().Err(err).Msg("Failed to start transaction")
		return errors.Wrap(err, "failed to start transaction")
	}

	defer func() {
		if txErr := tx.Rollback(); txErr != nil && !errors.Is(txErr, sql.ErrTxDone) {
			util.LogFromContext(ctx).Warn().Err(txErr).Msg("Failed to rollback transaction")
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		util.LogFromContext(ctx).Warn().Err(err).Msg("Failed to commit transaction")
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
