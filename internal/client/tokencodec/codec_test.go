package tokencodec

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facturadash/facturadash/internal/common"
)

func testFingerprint() Fingerprint {
	return Fingerprint{
		Platform: "linux/amd64",
		Hostname: "workbench",
		Locale:   "es_PA.UTF-8",
		Timezone: "EST",
	}
}

// ---- fake store ----

type fakeStore struct {
	values  map[string][]byte
	deleted []string
	getErr  error
	delErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: make(map[string][]byte)}
}

func (f *fakeStore) Get(_ context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.values[key], nil
}

func (f *fakeStore) Delete(_ context.Context, key string) error {
	if f.delErr != nil {
		return f.delErr
	}
	delete(f.values, key)
	f.deleted = append(f.deleted, key)
	return nil
}

// ---- TESTS ----

func TestEncodeDecode_RoundTrip(t *testing.T) {
	c := New(testFingerprint())

	tests := []string{
		"eyJhbGciOiJIUzI1NiJ9.payload.sig",
		"plain-token-without-marker",
		"token:with:colons",
		"x",
	}

	for _, plaintext := range tests {
		encoded := c.Encode(plaintext)
		require.NotEmpty(t, encoded)
		require.NotEqual(t, plaintext, encoded)
		assert.Equal(t, plaintext, c.Decode(encoded))
	}
}

func TestEncode_EmptyInputIsNoop(t *testing.T) {
	c := New(testFingerprint())
	assert.Empty(t, c.Encode(""))
}

func TestEncode_EmptyKeyFallsBackToPlaintext(t *testing.T) {
	c := New(Fingerprint{})
	c.key = nil

	assert.Equal(t, "eyJabc", c.Encode("eyJabc"))
}

func TestDecode_Expiry(t *testing.T) {
	c := New(testFingerprint())

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return base }
	encoded := c.Encode("eyJabc")

	// still valid just inside the window
	c.now = func() time.Time { return base.Add(MaxAge - time.Minute) }
	assert.Equal(t, "eyJabc", c.Decode(encoded))

	// expired just outside it
	c.now = func() time.Time { return base.Add(MaxAge + time.Minute) }
	assert.Empty(t, c.Decode(encoded))
}

func TestDecode_MalformedInputNeverPanics(t *testing.T) {
	c := New(testFingerprint())

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "not base64", input: "!!!not-base64!!!"},
		{name: "base64 of garbage", input: base64.StdEncoding.EncodeToString([]byte("garbage"))},
		{name: "no separator after decode", input: base64.StdEncoding.EncodeToString(xorBytes([]byte("nostamp"), c.key))},
		{name: "raw jwt fed to decode", input: "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, c.Decode(tt.input))
		})
	}
}

func TestDecode_WrongFingerprint(t *testing.T) {
	c := New(testFingerprint())
	encoded := c.Encode("eyJabc")

	other := New(Fingerprint{Platform: "darwin/arm64", Hostname: "laptop", Locale: "en_US", Timezone: "PST"})
	assert.Empty(t, other.Decode(encoded))
}

func TestDecode_NonNumericTimestamp(t *testing.T) {
	c := New(testFingerprint())
	forged := base64.StdEncoding.EncodeToString(xorBytes([]byte("soon:token"), c.key))
	assert.Empty(t, c.Decode(forged))
}

func TestIsEncoded(t *testing.T) {
	c := New(testFingerprint())

	assert.False(t, c.IsEncoded(""))
	assert.False(t, c.IsEncoded("eyJhbGciOiJIUzI1NiJ9.x.y"))
	assert.True(t, c.IsEncoded(c.Encode("abc")))
	assert.True(t, c.IsEncoded("some-opaque-value"))
}

func TestPurgeExpired_RemovesExpiredCredentialAndIdentity(t *testing.T) {
	c := New(testFingerprint())
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return base }
	encoded := c.Encode("eyJabc")

	s := newFakeStore()
	s.values[common.CredentialStorageKey] = []byte(encoded)
	s.values[common.IdentityStorageKey] = []byte(`{"id":1}`)

	c.now = func() time.Time { return base.Add(25 * time.Hour) }
	require.NoError(t, c.PurgeExpired(ctx, s))

	assert.Empty(t, s.values[common.CredentialStorageKey])
	assert.Empty(t, s.values[common.IdentityStorageKey])
}

func TestPurgeExpired_KeepsValidCredential(t *testing.T) {
	c := New(testFingerprint())
	ctx := context.Background()

	encoded := c.Encode("eyJabc")

	s := newFakeStore()
	s.values[common.CredentialStorageKey] = []byte(encoded)
	s.values[common.IdentityStorageKey] = []byte(`{"id":1}`)

	require.NoError(t, c.PurgeExpired(ctx, s))
	assert.Equal(t, encoded, string(s.values[common.CredentialStorageKey]))
	assert.Empty(t, s.deleted)
}

func TestPurgeExpired_RawCredentialUntouched(t *testing.T) {
	c := New(testFingerprint())
	ctx := context.Background()

	s := newFakeStore()
	s.values[common.CredentialStorageKey] = []byte("eyJhbGciOiJIUzI1NiJ9.x.y")

	require.NoError(t, c.PurgeExpired(ctx, s))
	assert.Empty(t, s.deleted)
}

func TestPurgeExpired_Idempotent(t *testing.T) {
	c := New(testFingerprint())
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return base }
	encoded := c.Encode("eyJabc")

	s := newFakeStore()
	s.values[common.CredentialStorageKey] = []byte(encoded)
	s.values[common.IdentityStorageKey] = []byte(`{"id":1}`)

	c.now = func() time.Time { return base.Add(25 * time.Hour) }
	require.NoError(t, c.PurgeExpired(ctx, s))
	first := len(s.values)

	require.NoError(t, c.PurgeExpired(ctx, s))
	assert.Equal(t, first, len(s.values))
}

func TestPurgeExpired_EmptyStoreIsNoop(t *testing.T) {
	c := New(testFingerprint())
	require.NoError(t, c.PurgeExpired(context.Background(), newFakeStore()))
}
