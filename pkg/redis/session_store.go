package redis

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"time"
)

// SessionData holds the data stored for an authenticated session
type SessionData struct {
	AccessToken   string `json:"accessToken"`
	RefreshToken  string `json:"refreshToken"`
	UpstreamToken string `json:"upstreamToken"`
}

// SessionStore handles encrypted session storage in Redis. It is shared by
// the auth session layer and the onboarding wizard state repository, which
// both keep user-supplied data at rest only in ciphertext.
type SessionStore struct {
	encryptionKey []byte
}

var (
	setSessionValue = Set
	getSessionValue = Get
	delSessionValue = Del
)

// NewSessionStore creates a new session store
func NewSessionStore(encryptionKeyHex string) (*SessionStore, error) {
	key, err := hex.DecodeString(encryptionKeyHex)
	if err != nil {
		return nil, errors.New("invalid encryption key hex")
	}
	if len(key) != 32 {
		return nil, errors.New("encryption key must be 32 bytes (64 hex chars)")
	}
	return &SessionStore{encryptionKey: key}, nil
}

// CreateSession stores encrypted session data in Redis
func (s *SessionStore) CreateSession(ctx context.Context, sessionID string, data *SessionData, expiration time.Duration) error {
	return s.PutJSON(ctx, "session:"+sessionID, data, expiration)
}

// GetSession retrieves and decrypts session data from Redis
func (s *SessionStore) GetSession(ctx context.Context, sessionID string) (*SessionData, error) {
	var data SessionData
	if err := s.GetJSON(ctx, "session:"+sessionID, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// DeleteSession removes a session from Redis
func (s *SessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	return delSessionValue(ctx, "session:"+sessionID)
}

// PutJSON marshals v, encrypts it and stores it under key with a TTL
func (s *SessionStore) PutJSON(ctx context.Context, key string, v interface{}, expiration time.Duration) error {
	jsonData, err := json.Marshal(v)
	if err != nil {
		return err
	}

	encryptedData, err := s.encrypt(jsonData)
	if err != nil {
		return err
	}

	return setSessionValue(ctx, key, encryptedData, expiration)
}

// GetJSON retrieves, decrypts and unmarshals the value stored under key
func (s *SessionStore) GetJSON(ctx context.Context, key string, v interface{}) error {
	encryptedDataStr, err := getSessionValue(ctx, key)
	if err != nil {
		return err
	}

	decryptedData, err := s.decrypt(encryptedDataStr)
	if err != nil {
		return err
	}

	return json.Unmarshal(decryptedData, v)
}

// Delete removes the value stored under key
func (s *SessionStore) Delete(ctx context.Context, key string) error {
	return delSessionValue(ctx, key)
}

func (s *SessionStore) encrypt(plaintext []byte) (string, error) {
	block, err := aes.NewCipher(s.encryptionKey)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ciphertext := gcm.Seal(nonce, nonce, plaintext, nil)
	return hex.EncodeToString(ciphertext), nil
}

func (s *SessionStore) decrypt(ciphertextHex string) ([]byte, error) {
	ciphertext, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(s.encryptionKey)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}

	nonce, ciphertext := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
	return gcm.Open(nil, nonce, ciphertext, nil)
}
