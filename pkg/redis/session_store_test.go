package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeyHex = "0000000000000000000000000000000000000000000000000000000000000000"

func TestNewSessionStoreValidation(t *testing.T) {
	_, err := NewSessionStore("zz")
	assert.Error(t, err)

	_, err = NewSessionStore("0011")
	assert.Error(t, err)

	store, err := NewSessionStore(testKeyHex)
	assert.NoError(t, err)
	assert.NotNil(t, store)
}

func TestSessionStoreEncryptDecrypt(t *testing.T) {
	store, err := NewSessionStore(testKeyHex)
	require.NoError(t, err)

	enc, err := store.encrypt([]byte(`{"x":1}`))
	require.NoError(t, err)
	assert.NotEmpty(t, enc)
	assert.NotContains(t, enc, `"x"`)

	dec, err := store.decrypt(enc)
	require.NoError(t, err)
	assert.Contains(t, string(dec), `"x":1`)

	_, err = store.decrypt("00") // too short ciphertext
	assert.Error(t, err)

	_, err = store.decrypt("zz-not-hex")
	assert.Error(t, err)
}

func TestSessionStoreEncryptDecrypt_InvalidKeyMaterial(t *testing.T) {
	store := &SessionStore{encryptionKey: []byte("short-key")}
	_, err := store.encrypt([]byte("x"))
	assert.Error(t, err)

	_, err = store.decrypt("00")
	assert.Error(t, err)
}

func newMiniredisStore(t *testing.T) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()
	srv, err := miniredis.Run()
	if err != nil {
		t.Skipf("skip: miniredis unavailable: %v", err)
	}
	t.Cleanup(srv.Close)
	SetClient(goredis.NewClient(&goredis.Options{Addr: srv.Addr()}))

	store, err := NewSessionStore(testKeyHex)
	require.NoError(t, err)
	return store, srv
}

func TestSessionStoreCreateGetDelete(t *testing.T) {
	store, _ := newMiniredisStore(t)
	ctx := context.Background()

	data := &SessionData{AccessToken: "a", RefreshToken: "r", UpstreamToken: "u"}
	require.NoError(t, store.CreateSession(ctx, "sid-1", data, time.Minute))

	got, err := store.GetSession(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	require.NoError(t, store.DeleteSession(ctx, "sid-1"))
	_, err = store.GetSession(ctx, "sid-1")
	assert.Error(t, err)
}

func TestSessionStorePutGetJSON(t *testing.T) {
	store, srv := newMiniredisStore(t)
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, store.PutJSON(ctx, "wizard:x", payload{Name: "Awa", Count: 3}, time.Minute))

	// at rest the value is ciphertext, not JSON
	raw, err := srv.Get("wizard:x")
	require.NoError(t, err)
	assert.NotContains(t, raw, "Awa")

	var got payload
	require.NoError(t, store.GetJSON(ctx, "wizard:x", &got))
	assert.Equal(t, payload{Name: "Awa", Count: 3}, got)

	require.NoError(t, store.Delete(ctx, "wizard:x"))
	assert.Error(t, store.GetJSON(ctx, "wizard:x", &got))
}

func TestSessionStoreCreateGetDeleteWithUnreachableRedis(t *testing.T) {
	store, err := NewSessionStore(testKeyHex)
	require.NoError(t, err)

	SetClient(goredis.NewClient(&goredis.Options{
		Addr:         "127.0.0.1:0",
		DialTimeout:  50 * time.Millisecond,
		ReadTimeout:  50 * time.Millisecond,
		WriteTimeout: 50 * time.Millisecond,
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	assert.Error(t, store.CreateSession(ctx, "sid-1", &SessionData{AccessToken: "a"}, time.Minute))
	_, err = store.GetSession(ctx, "sid-1")
	assert.Error(t, err)
	assert.Error(t, store.DeleteSession(ctx, "sid-1"))
}
