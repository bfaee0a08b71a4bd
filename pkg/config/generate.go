package config

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/durafs/pkg/errors"
)

const generateHeader = `# durafs configuration.
# Place this file at <config-home>/durafs/durafs.toml to override the
# built-in defaults.

`

// Generate renders the current defaults as a TOML document a user can
// drop into their config directory and edit.
func Generate() (string, error) {
	cfg, err := Default()
	if err != nil {
		return "", err
	}

	out, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render config")
	}
	return generateHeader + string(out), nil
}
