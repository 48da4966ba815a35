package repositories

import (
	"errors"

	"restaurant-client/storage"
)

const tokenStorageKey = "auth_token"

// TokenRepository persists the session's bearer token in the same
// key-value surface the cart uses.
type TokenRepository struct {
	store storage.KV
}

func NewTokenRepository(store storage.KV) *TokenRepository {
	return &TokenRepository{store: store}
}

// Token returns the stored token, or "" when no session exists. It is
// shaped to be used directly as an api.TokenSource.
func (r *TokenRepository) Token() string {
	token, err := r.store.Get(tokenStorageKey)
	if err != nil {
		return ""
	}
	return token
}

func (r *TokenRepository) Store(token string) error {
	if token == "" {
		return errors.New("empty token")
	}
	return r.store.Set(tokenStorageKey, token)
}

func (r *TokenRepository) Clear() error {
	return r.store.Remove(tokenStorageKey)
}
