// Package config loads the jwtgate server configuration from a YAML file
// with ${VAR} expansion, or from the environment alone.
package config
