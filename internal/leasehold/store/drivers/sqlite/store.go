package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/aussiebroadwan/leasehold/internal/leasehold/domain"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/store"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/store/drivers/sqlite/gen"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Store struct {
	db *sql.DB
	q  *gen.Queries
}

// DSN builds a modernc.org/sqlite connection string for a database file with
// foreign keys on, WAL journaling, a busy timeout and BEGIN IMMEDIATE
// transactions so concurrent writers queue instead of failing on upgrade.
func DSN(file string) string {
	v := url.Values{}
	v.Add("_pragma", "foreign_keys(1)")
	v.Add("_pragma", "busy_timeout(5000)")
	if file != ":memory:" {
		v.Add("_pragma", "journal_mode(wal)")
	}
	v.Set("_txlock", "immediate")
	return "file:" + file + "?" + v.Encode()
}

// NewStore opens the database. An in-memory database is pinned to a single
// connection because each connection would otherwise see its own empty
// database.
func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if strings.Contains(dsn, ":memory:") {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db: db,
		q:  gen.New(db),
	}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Accounts() store.Accounts       { return &accountsRepo{q: s.q} }
func (s *Store) Properties() store.Properties   { return &propertiesRepo{q: s.q} }
func (s *Store) Invitations() store.Invitations { return &invitationsRepo{q: s.q} }
func (s *Store) Bindings() store.Bindings       { return &bindingsRepo{q: s.q} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConstraint turns UNIQUE and PRIMARY KEY violations into ErrAlreadyExists.
func mapConstraint(err error) error {
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return store.ErrAlreadyExists
		case sqlite3.SQLITE_CONSTRAINT:
			if strings.Contains(se.Error(), "UNIQUE constraint failed") {
				return store.ErrAlreadyExists
			}
		}
	}
	return err
}

// requireRow maps a zero-row write to the given error.
func requireRow(n int64, err error, none error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return none
	}
	return nil
}

// ts normalises timestamps to whole seconds in UTC so stored values compare
// correctly as text.
func ts(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: ts(t), Valid: true}
}

func mapNullTimePtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		val := nt.Time.UTC()
		return &val
	}
	return nil
}

func mapNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func mapAccount(row gen.Account) domain.Account {
	return domain.Account{
		ID:           row.ID,
		Role:         domain.Role(row.Role),
		Username:     row.Username,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		Phone:        row.Phone,
		Gender:       domain.Gender(row.Gender),
		CreatedAt:    row.CreatedAt.UTC(),
		UpdatedAt:    row.UpdatedAt.UTC(),
	}
}

func mapProperty(row gen.Property) domain.Property {
	return domain.Property{
		ID:         row.ID,
		LandlordID: row.LandlordID,
		Name:       row.Name,
		Address:    row.Address,
		UnitNumber: row.UnitNumber,
		Occupied:   row.Occupied,
		CreatedAt:  row.CreatedAt.UTC(),
		UpdatedAt:  row.UpdatedAt.UTC(),
	}
}

func mapInvitation(row gen.Invitation) domain.Invitation {
	return domain.Invitation{
		Token:        row.Token,
		LandlordID:   row.LandlordID,
		PropertyID:   row.PropertyID,
		InvitedEmail: row.InvitedEmail,
		CreatedAt:    row.CreatedAt.UTC(),
		ExpiresAt:    row.ExpiresAt.UTC(),
		Used:         row.Used,
		UsedAt:       mapNullTimePtr(row.UsedAt),
		UsedBy:       mapNullString(row.UsedBy),
		RevokedAt:    mapNullTimePtr(row.RevokedAt),
	}
}

func mapBinding(row gen.Binding) (domain.Binding, error) {
	moveIn, err := domain.ParseDate(row.MoveInDate)
	if err != nil {
		return domain.Binding{}, err
	}
	return domain.Binding{
		ID:                 row.ID,
		TenantID:           row.TenantID,
		LandlordID:         row.LandlordID,
		PropertyID:         row.PropertyID,
		MoveInDate:         moveIn,
		InvitationToken:    row.InvitationToken,
		Status:             domain.BindingStatus(row.Status),
		LandlordTerminated: row.LandlordTerminated,
		TenantTerminated:   row.TenantTerminated,
		TerminatedAt:       mapNullTimePtr(row.TerminatedAt),
		CreatedAt:          row.CreatedAt.UTC(),
	}, nil
}
