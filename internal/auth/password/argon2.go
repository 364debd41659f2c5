// Package password hashes and verifies credentials with argon2id. Hashing is
// CPU-bound, so a weighted semaphore caps the number of concurrent derivations
// at GOMAXPROCS; callers block in Acquire (context-aware) instead of piling
// argon2 work onto every request goroutine.
package password

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/sync/semaphore"
)

const (
	defaultMemoryKB    uint32 = 19 * 1024
	defaultTimeCost    uint32 = 2
	defaultParallelism uint8  = 1
	saltLength                = 16
	keyLength          uint32 = 32
	algorithmID               = "argon2id"
)

var errInvalidHash = errors.New("invalid password hash encoding")

// Hasher derives and verifies argon2id hashes in PHC string format.
type Hasher struct {
	memory      uint32
	time        uint32
	parallelism uint8
	workers     *semaphore.Weighted
}

// NewHasher returns a Hasher with the OWASP-recommended argon2id parameters.
func NewHasher() *Hasher {
	return &Hasher{
		memory:      defaultMemoryKB,
		time:        defaultTimeCost,
		parallelism: defaultParallelism,
		workers:     semaphore.NewWeighted(int64(max(1, runtime.GOMAXPROCS(0)))),
	}
}

// Hash derives a PHC-encoded hash of the secret. It blocks while all hashing
// workers are busy and honors ctx cancellation while waiting.
func (h *Hasher) Hash(ctx context.Context, secret string) (string, error) {
	if err := h.workers.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer h.workers.Release(1)

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	key := argon2.IDKey([]byte(secret), salt, h.time, h.memory, h.parallelism, keyLength)

	return fmt.Sprintf(
		"$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		algorithmID,
		argon2.Version,
		h.memory,
		h.time,
		h.parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify recomputes the hash with the parameters embedded in encodedHash and
// compares in constant time. A false result with nil error means the secret
// simply did not match.
func (h *Hasher) Verify(ctx context.Context, secret, encodedHash string) (bool, error) {
	salt, key, memory, time, parallelism, err := decodePHC(encodedHash)
	if err != nil {
		return false, err
	}

	if err := h.workers.Acquire(ctx, 1); err != nil {
		return false, err
	}
	defer h.workers.Release(1)

	computed := argon2.IDKey([]byte(secret), salt, time, memory, parallelism, uint32(len(key)))

	return subtle.ConstantTimeCompare(computed, key) == 1, nil
}

func decodePHC(encoded string) (salt, key []byte, memory, time uint32, parallelism uint8, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != algorithmID {
		return nil, nil, 0, 0, 0, errInvalidHash
	}

	var version int
	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return nil, nil, 0, 0, 0, errInvalidHash
	}

	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &parallelism); err != nil {
		return nil, nil, 0, 0, 0, errInvalidHash
	}
	if memory == 0 || time == 0 || parallelism == 0 {
		return nil, nil, 0, 0, 0, errInvalidHash
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) < saltLength {
		return nil, nil, 0, 0, 0, errInvalidHash
	}

	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return nil, nil, 0, 0, 0, errInvalidHash
	}

	return salt, key, memory, time, parallelism, nil
}
