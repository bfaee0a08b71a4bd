// Package config loads durafs settings: embedded defaults overlaid
// with an optional user file from the XDG config directory.
package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/durafs/pkg/errors"
	"github.com/arthur-debert/durafs/pkg/paths"
	"github.com/arthur-debert/durafs/pkg/retry"
)

//go:embed embedded/durafs.toml
var defaultConfig []byte

// UserConfigFile is the file name looked up inside the XDG config dir.
const UserConfigFile = "durafs.toml"

// Config holds every user-tunable setting.
type Config struct {
	Delete DeleteConfig `koanf:"delete" toml:"delete"`
	Copy   CopyConfig   `koanf:"copy" toml:"copy"`
	Disk   DiskConfig   `koanf:"disk" toml:"disk"`
}

// DeleteConfig shapes the default retry policy for deletions.
type DeleteConfig struct {
	Attempts          int  `koanf:"attempts" toml:"attempts"`
	DelayMs           int  `koanf:"delay_ms" toml:"delay_ms"`
	RaiseOnExhaustion bool `koanf:"raise_on_exhaustion" toml:"raise_on_exhaustion"`
}

// CopyConfig shapes copy and replace retries.
type CopyConfig struct {
	Attempts int `koanf:"attempts" toml:"attempts"`
}

// DiskConfig shapes the free-space guard.
type DiskConfig struct {
	MinFreeMiB int `koanf:"min_free_mib" toml:"min_free_mib"`
}

// DeletePolicy converts the delete settings to a retry policy.
func (c *Config) DeletePolicy() retry.Policy {
	return retry.Policy{
		Attempts:          c.Delete.Attempts,
		Delay:             time.Duration(c.Delete.DelayMs) * time.Millisecond,
		RaiseOnExhaustion: c.Delete.RaiseOnExhaustion,
	}
}

// MinFreeBytes returns the configured free-space floor in bytes.
func (c *Config) MinFreeBytes() uint64 {
	return uint64(c.Disk.MinFreeMiB) * 1024 * 1024
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// UserConfigPath returns where the user override file is expected.
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, paths.AppName, UserConfigFile)
}

// Load merges embedded defaults with the user config file, when one
// exists.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	userPath := UserConfigPath()
	if _, err := os.Stat(userPath); err == nil {
		if err := k.Load(file.Provider(userPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load user config from %s", userPath)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}
	return &cfg, nil
}

// Default returns the embedded defaults without touching the user file.
func Default() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}
	return &cfg, nil
}
