package auth

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"strings"

	"scribe/internal/cache"
)

// BreachedPasswordsKey is the redis set holding SHA-1 digests of known
// compromised passwords, loaded by the seed command.
const BreachedPasswordsKey = "breached_passwords"

// BreachChecker tests candidate passwords against a corpus of breached
// password digests.
type BreachChecker interface {
	IsBreached(ctx context.Context, password string) (bool, error)
}

type breachChecker struct {
	cache *cache.Client
}

// NewBreachChecker creates a redis-backed breach checker. A redis outage
// degrades to "not breached" so registration keeps working.
func NewBreachChecker(cache *cache.Client) BreachChecker {
	return &breachChecker{cache: cache}
}

func (b *breachChecker) IsBreached(ctx context.Context, password string) (bool, error) {
	return b.cache.SetContains(ctx, BreachedPasswordsKey, Digest(password))
}

// Digest returns the uppercase hex SHA-1 of a password, the format the
// corpus is keyed by.
func Digest(password string) string {
	sum := sha1.Sum([]byte(password))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}
