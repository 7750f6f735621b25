// Package config loads the layered application configuration for both the
// sync client and the reference remote-store server.
//
// Values are merged from three sources, last non-zero source winning:
// environment variables (caarlos0/env tags), command-line flags, and an
// optional JSON file whose path is itself taken from the first two sources.
// Merging is performed with dario.cat/mergo; the merged result is then
// normalized (defaults applied) and validated.
package config
