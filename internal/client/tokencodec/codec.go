// Package tokencodec obfuscates the bearer credential before it reaches
// persistent local storage, and recovers it on the way back.
//
// This is deliberately not cryptography. The key is derived from public,
// guessable host attributes and the transform is a byte-wise XOR. The goal is
// only to keep the raw credential out of the cache file as readable text; an
// attacker who can execute code as the same user can read the key-deriving
// attributes anyway. Do not "upgrade" this to real encryption without
// revisiting that trade-off.
package tokencodec

import (
	"context"
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"github.com/facturadash/facturadash/internal/common"
)

// RawTokenMarker is the prefix every backend-issued credential starts with
// (the base64 of a JWT header). Anything without this prefix is treated as
// this codec's own output. If the backend ever changes its token format,
// this constant is the single place to update.
const RawTokenMarker = "eyJ"

// MaxAge is how long an encoded credential stays decodable.
const MaxAge = 24 * time.Hour

const keyLength = 32

// CredentialStore is the slice of the local store the codec needs for purging.
type CredentialStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// Codec encodes and decodes credentials with a fingerprint-derived key.
// The zero value is not usable; construct with New.
type Codec struct {
	key []byte
	now func() time.Time
}

// New returns a Codec keyed by the given fingerprint.
func New(fp Fingerprint) *Codec {
	return &Codec{key: deriveKey(fp), now: time.Now}
}

// deriveKey concatenates the fingerprint attributes, text-encodes them, and
// truncates to a fixed length. Same fingerprint, same key.
func deriveKey(fp Fingerprint) []byte {
	raw := fp.Platform + "-" + fp.Hostname + "-" + fp.Locale + "-" + fp.Timezone
	k := base64.StdEncoding.EncodeToString([]byte(raw))
	if len(k) > keyLength {
		k = k[:keyLength]
	}
	return []byte(k)
}

// xorBytes combines data with the cycling key. Applying it twice with the
// same key restores the input.
func xorBytes(data, key []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ key[i%len(key)]
	}
	return out
}

// Encode obfuscates a plaintext credential for storage. The creation
// timestamp is embedded so Decode can enforce MaxAge. Empty input yields
// empty output. If the codec has no usable key, the plaintext is returned
// unmodified: callers must tolerate an un-obfuscated value coming back.
func (c *Codec) Encode(plaintext string) string {
	if plaintext == "" {
		return ""
	}
	if len(c.key) == 0 {
		return plaintext
	}

	stamped := strconv.FormatInt(c.now().UnixMilli(), 10) + ":" + plaintext
	return base64.StdEncoding.EncodeToString(xorBytes([]byte(stamped), c.key))
}

// Decode reverses Encode. It returns the original plaintext, or "" when the
// input is empty, malformed, produced under a different fingerprint, or older
// than MaxAge. It never panics and never returns partial data.
func (c *Codec) Decode(encoded string) string {
	if encoded == "" || len(c.key) == 0 {
		return ""
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return ""
	}

	stamped := string(xorBytes(raw, c.key))
	ts, plaintext, ok := strings.Cut(stamped, ":")
	if !ok || plaintext == "" {
		return ""
	}

	createdMilli, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return ""
	}

	if c.now().Sub(time.UnixMilli(createdMilli)) > MaxAge {
		return ""
	}
	return plaintext
}

// IsEncoded reports whether token looks like this codec's output rather than
// a raw backend credential. Backend tokens always start with RawTokenMarker;
// this is a format heuristic, not a proof.
func (c *Codec) IsEncoded(token string) bool {
	if token == "" {
		return false
	}
	return !strings.HasPrefix(token, RawTokenMarker)
}

// PurgeExpired deletes the stored credential and the cached identity when the
// stored credential is encoded and no longer decodes. A raw credential, a
// still-valid one, or an empty store is left untouched. Safe to call
// repeatedly; intended to run once at startup before any session logic.
func (c *Codec) PurgeExpired(ctx context.Context, store CredentialStore) error {
	stored, err := store.Get(ctx, common.CredentialStorageKey)
	if err != nil {
		return err
	}

	token := string(stored)
	if token == "" || !c.IsEncoded(token) {
		return nil
	}
	if c.Decode(token) != "" {
		return nil
	}

	if err := store.Delete(ctx, common.CredentialStorageKey); err != nil {
		return err
	}
	return store.Delete(ctx, common.IdentityStorageKey)
}
