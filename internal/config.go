package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"lc4riot/lc4"
)

// Config is the optional user configuration file. Flags override file
// values; file values override DefaultConfig.
//
//	mode = "ls47"
//	nonce_length = 12
//	signature = "#rubberduck"
//	color = "auto"   # auto, always, never
//
//	[kdf]
//	name = "argon2id"
//	memory_mb = 512
//	time = 3
//	parallel = 1
type Config struct {
	Mode        string    `toml:"mode"`
	NonceLength int       `toml:"nonce_length"`
	Signature   string    `toml:"signature"`
	Color       string    `toml:"color"`
	KDF         KDFConfig `toml:"kdf"`
}

// KDFConfig holds the passphrase stretching parameters.
type KDFConfig struct {
	Name     string `toml:"name"`
	MemoryMB uint32 `toml:"memory_mb"`
	Time     uint32 `toml:"time"`
	Parallel uint8  `toml:"parallel"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	p := DefaultKeyPolicy()
	return Config{
		Mode:        lc4.Primary.String(),
		NonceLength: lc4.DefaultNonceLength,
		Color:       "auto",
		KDF: KDFConfig{
			Name:     p.KDF,
			MemoryMB: p.KDFMemMB,
			Time:     p.KDFTime,
			Parallel: p.KDFParallel,
		},
	}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/lc4riot/config.toml or the
// platform equivalent.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "lc4riot", "config.toml"), nil
}

// LoadConfig reads the TOML file at path over DefaultConfig. A missing file
// is not an error when missingOK is set.
func LoadConfig(path string, missingOK bool) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if missingOK && errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg to path, creating parent directories.
func SaveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// Validate checks every field that has a closed set of values.
func (c Config) Validate() error {
	if _, err := lc4.ParseMode(c.Mode); err != nil {
		return err
	}
	if c.NonceLength < lc4.MinNonceLength {
		return fmt.Errorf("nonce_length must be at least %d, got %d", lc4.MinNonceLength, c.NonceLength)
	}
	if _, err := c.ColorMode(); err != nil {
		return err
	}
	switch strings.ToLower(c.KDF.Name) {
	case "", "argon2id", "none":
	default:
		return fmt.Errorf("%w %q (supported: argon2id, none)", ErrUnknownKDF, c.KDF.Name)
	}
	return nil
}

// ColorMode reports the configured color choice: nil for auto, otherwise
// whether color is forced on or off.
func (c Config) ColorMode() (*bool, error) {
	on, off := true, false
	switch strings.ToLower(strings.TrimSpace(c.Color)) {
	case "", "auto":
		return nil, nil
	case "always":
		return &on, nil
	case "never":
		return &off, nil
	default:
		return nil, fmt.Errorf("color must be auto, always or never, got %q", c.Color)
	}
}

// KeyPolicy returns the key policy described by the [kdf] table.
func (c Config) KeyPolicy(strict bool) KeyPolicy {
	return KeyPolicy{
		KDF:         c.KDF.Name,
		KDFMemMB:    c.KDF.MemoryMB,
		KDFTime:     c.KDF.Time,
		KDFParallel: c.KDF.Parallel,
		Strict:      strict,
	}
}
