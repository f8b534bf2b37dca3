package social

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

// Session holds the reusable login state between runs, so repeated
// posting does not trigger fresh logins and challenge prompts.
type Session struct {
	Username string            `json:"username"`
	DeviceID string            `json:"device_id"`
	Token    string            `json:"token"`
	Cookies  map[string]string `json:"cookies,omitempty"`
	SavedAt  time.Time         `json:"saved_at"`
}

// ErrNoSession is returned when the session file does not exist.
var ErrNoSession = errors.New("social: no saved session")

// ErrSessionCorrupt is returned when the session file cannot be
// decrypted, usually after a password change.
var ErrSessionCorrupt = errors.New("social: session file corrupt or key changed")

// scrypt parameters for the session key derivation.
const (
	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

const sessionSaltSize = 16

// SessionStore persists a Session encrypted at rest. The account
// password doubles as the encryption passphrase, so the file is useless
// without the credentials that created it.
type SessionStore struct {
	path       string
	passphrase string
}

// NewSessionStore creates a store writing to path, encrypting with the
// given passphrase.
func NewSessionStore(path, passphrase string) *SessionStore {
	return &SessionStore{path: path, passphrase: passphrase}
}

// Save encrypts and writes the session. The file layout is
// salt || nonce || ciphertext, written with owner-only permissions.
func (s *SessionStore) Save(session *Session) error {
	session.SavedAt = time.Now().UTC()

	plaintext, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("social: marshal session: %w", err)
	}

	salt := make([]byte, sessionSaltSize)
	if _, err := rand.Read(salt); err != nil {
		return fmt.Errorf("social: generate salt: %w", err)
	}

	aead, err := s.aead(salt)
	if err != nil {
		return err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return fmt.Errorf("social: generate nonce: %w", err)
	}

	blob := make([]byte, 0, len(salt)+len(nonce)+len(plaintext)+aead.Overhead())
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = aead.Seal(blob, nonce, plaintext, nil)

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("social: create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, blob, 0o600); err != nil {
		return fmt.Errorf("social: write session file: %w", err)
	}
	return nil
}

// Load reads and decrypts the stored session.
func (s *SessionStore) Load() (*Session, error) {
	blob, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("social: read session file: %w", err)
	}

	if len(blob) < sessionSaltSize+chacha20poly1305.NonceSizeX {
		return nil, ErrSessionCorrupt
	}
	salt := blob[:sessionSaltSize]
	nonce := blob[sessionSaltSize : sessionSaltSize+chacha20poly1305.NonceSizeX]
	ciphertext := blob[sessionSaltSize+chacha20poly1305.NonceSizeX:]

	aead, err := s.aead(salt)
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrSessionCorrupt
	}

	var session Session
	if err := json.Unmarshal(plaintext, &session); err != nil {
		return nil, ErrSessionCorrupt
	}
	return &session, nil
}

// Clear removes the session file. A missing file is not an error.
func (s *SessionStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("social: remove session file: %w", err)
	}
	return nil
}

func (s *SessionStore) aead(salt []byte) (cipher.AEAD, error) {
	key, err := scrypt.Key([]byte(s.passphrase), salt, scryptN, scryptR, scryptP, chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("social: derive session key: %w", err)
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("social: init cipher: %w", err)
	}
	return aead, nil
}
