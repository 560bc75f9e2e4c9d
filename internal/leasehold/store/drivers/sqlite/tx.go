package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aussiebroadwan/leasehold/internal/leasehold/store"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/store/drivers/sqlite/gen"
)

// ErrNestedTx is returned when a second transaction is begun on a Tx.
var ErrNestedTx = errors.New("sqlite: nested transaction")

// txStore scopes every repository to one *sql.Tx.
type txStore struct {
	tx *sql.Tx

	accounts    *accountsRepo
	properties  *propertiesRepo
	invitations *invitationsRepo
	bindings    *bindingsRepo
}

var _ store.Tx = (*txStore)(nil)

func newTx(tx *sql.Tx) *txStore {
	q := gen.New(tx)
	return &txStore{
		tx:          tx,
		accounts:    &accountsRepo{q: q},
		properties:  &propertiesRepo{q: q},
		invitations: &invitationsRepo{q: q},
		bindings:    &bindingsRepo{q: q},
	}
}

func (t *txStore) Accounts() store.Accounts       { return t.accounts }
func (t *txStore) Properties() store.Properties   { return t.properties }
func (t *txStore) Invitations() store.Invitations { return t.invitations }
func (t *txStore) Bindings() store.Bindings       { return t.bindings }

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Tx(context.Context) (store.Tx, error) { return nil, ErrNestedTx }

// WithTx on a Tx joins it: fn runs in the enclosing transaction and its
// error is handed back for the outer WithTx to roll back on.
func (t *txStore) WithTx(_ context.Context, fn func(store.Tx) error) error {
	return fn(t)
}

// The connection and schema belong to the parent Store.
func (t *txStore) ApplyMigrations() error         { return nil }
func (t *txStore) Close() error                   { return nil }
func (t *txStore) Ping(ctx context.Context) error { return nil }
