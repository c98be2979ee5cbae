package stateuser

import (
	"context"
	"errors"
	"strings"
	"time"
)

// StateUser is the public profile the frontend keeps for a connected address.
type StateUser struct {
	Address  string  `json:"address"`
	Image    *string `json:"image"`
	Username *string `json:"username"`
}

// CacheSetOK is the acknowledgement a cache returns for a successful write.
const CacheSetOK = "OK"

var (
	ErrUserNotFound = errors.New("No User found")
	ErrCacheUpdate  = errors.New("Error updating cache")
)

type StateUserRepository interface {
	// FindByAddress returns ErrUserNotFound when no row matches.
	FindByAddress(ctx context.Context, address string) (*StateUser, error)
	// Upsert is used by data seeding only; lookups never write the store.
	Upsert(ctx context.Context, u *StateUser) error
}

type StateUserCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) (string, error)
}

// NormalizeAddress lowercases an address so every key derived from it is stable.
func NormalizeAddress(address string) string {
	return strings.ToLower(address)
}
