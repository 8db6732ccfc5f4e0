// Package configs provides embedded configuration files for the prflow application.
package configs

import _ "embed"

// DefaultConfigYAML contains the commented starter configuration written
// by prflow init.
//
//go:embed default.yaml
var DefaultConfigYAML []byte
