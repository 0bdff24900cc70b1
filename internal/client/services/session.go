// Package services contains the client application services: the persisted
// session, the user session built on top of it and the story catalog.
package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/hacksnooze/internal/client/models"
	"github.com/dmitrijs2005/hacksnooze/internal/client/repositories/storage"
	"github.com/dmitrijs2005/hacksnooze/internal/dbx"
)

const (
	tokenKey    = "token"
	usernameKey = "username"
)

// RepositoryFactory opens local storage on a database or a transaction.
type RepositoryFactory func(db dbx.DBTX) storage.Repository

// SessionStore persists the (token, username) pair in local storage.
type SessionStore struct {
	db      *sql.DB
	newRepo RepositoryFactory
}

func NewSessionStore(db *sql.DB) *SessionStore {
	return NewSessionStoreWith(db, func(db dbx.DBTX) storage.Repository {
		return storage.NewSQLiteRepository(db)
	})
}

func NewSessionStoreWith(db *sql.DB, newRepo RepositoryFactory) *SessionStore {
	return &SessionStore{db: db, newRepo: newRepo}
}

// Save writes both fields in one transaction, replacing earlier values.
func (s *SessionStore) Save(ctx context.Context, session models.Session) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.newRepo(tx)
		if err := repo.SetItem(ctx, tokenKey, session.Token); err != nil {
			return err
		}
		return repo.SetItem(ctx, usernameKey, session.Username)
	})
}

// Load returns whatever is stored; missing fields come back empty. Token
// freshness is not checked here.
func (s *SessionStore) Load(ctx context.Context) (models.Session, error) {
	repo := s.newRepo(s.db)

	token, _, err := repo.GetItem(ctx, tokenKey)
	if err != nil {
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}
	username, _, err := repo.GetItem(ctx, usernameKey)
	if err != nil {
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}
	return models.Session{Token: token, Username: username}, nil
}

// Clear wipes the whole local storage area.
func (s *SessionStore) Clear(ctx context.Context) error {
	return s.newRepo(s.db).Clear(ctx)
}
