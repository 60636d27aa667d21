// Package credentials persists the hotspot credential pair a group owner hands to joining
// peers. The BLE credential-exchange service reads the network name and pre-shared key from
// here when populating its characteristics.
package credentials

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/99designs/keyring"

	"github.com/p2pconn/p2p-connection/internal/log"
)

const (
	keyringServiceName = "com.p2pconn.hotspot"
	keyringSSIDKey     = "hotspotSsid"
	keyringPSKKey      = "hotspotPsk"
)

// ErrNoCredentials indicates no credential pair has been saved.
var ErrNoCredentials = errors.New("no hotspot credentials stored")

// Credentials is one hotspot credential pair.
type Credentials struct {
	SSID string
	PSK  string
}

// Config selects and configures the keyring backend.
type Config struct {
	// ServiceName overrides the keyring service name. Empty uses the package default.
	ServiceName string
	// AllowedBackends restricts backend selection. Empty lets the keyring library pick the
	// best backend for the platform.
	AllowedBackends []keyring.BackendType
	// FileDir is the directory for file-backed keyring types.
	FileDir string
	// PasswordFunc prompts for the password protecting file- or keychain-backed entries.
	PasswordFunc keyring.PromptFunc
}

// Store saves and loads hotspot credentials in the system keyring.
type Store struct {
	ring keyring.Keyring
}

// Open connects to the system keyring. Depending on the backend, this may prompt the user.
func Open(config Config) (*Store, error) {
	serviceName := config.ServiceName
	if serviceName == "" {
		serviceName = keyringServiceName
	}
	ring, err := keyring.Open(keyring.Config{
		ServiceName:              serviceName,
		AllowedBackends:          config.AllowedBackends,
		KeychainTrustApplication: true,
		KeyCtlScope:              "user",
		FileDir:                  config.FileDir,
		FilePasswordFunc:         config.PasswordFunc,
		KeychainPasswordFunc:     config.PasswordFunc,
	})
	if err != nil {
		return nil, fmt.Errorf("credentials: failed to open keyring: %w", err)
	}
	return &Store{ring: ring}, nil
}

// Save stores the credential pair, replacing any previous pair.
func (s *Store) Save(credentials Credentials) error {
	if credentials.SSID == "" {
		return errors.New("credentials: SSID must not be empty")
	}
	if err := s.ring.Set(keyring.Item{
		Key:   keyringSSIDKey,
		Data:  []byte(credentials.SSID),
		Label: "hotspot network name",
	}); err != nil {
		return fmt.Errorf("credentials: failed to store SSID: %w", err)
	}
	if err := s.ring.Set(keyring.Item{
		Key:   keyringPSKKey,
		Data:  []byte(credentials.PSK),
		Label: "hotspot pre-shared key",
	}); err != nil {
		return fmt.Errorf("credentials: failed to store PSK: %w", err)
	}
	log.Debug("Stored hotspot credentials for %s", credentials.SSID)
	return nil
}

// Load fetches the stored credential pair, or ErrNoCredentials if none exists.
func (s *Store) Load() (Credentials, error) {
	ssid, err := s.ring.Get(keyringSSIDKey)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return Credentials{}, ErrNoCredentials
	}
	if err != nil {
		return Credentials{}, fmt.Errorf("credentials: failed to load SSID: %w", err)
	}
	psk, err := s.ring.Get(keyringPSKKey)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		// A pair missing its PSK is treated as absent; a hotspot may legitimately be open,
		// in which case an empty PSK is stored rather than omitted.
		return Credentials{}, ErrNoCredentials
	}
	if err != nil {
		return Credentials{}, fmt.Errorf("credentials: failed to load PSK: %w", err)
	}
	return Credentials{SSID: string(ssid.Data), PSK: string(psk.Data)}, nil
}

// Clear removes the stored pair. Clearing an empty store succeeds.
func (s *Store) Clear() error {
	for _, key := range []string{keyringSSIDKey, keyringPSKKey} {
		err := s.ring.Remove(key)
		if err == nil || errors.Is(err, keyring.ErrKeyNotFound) {
			continue
		}
		// The file backend reports missing entries with the raw os.Remove error rather than
		// ErrKeyNotFound.
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return fmt.Errorf("credentials: failed to remove %s: %w", key, err)
	}
	return nil
}
