// Package config provides configuration loading, merging, and validation
// facilities for the client.
//
// Configuration is assembled from multiple sources; earlier sources take
// precedence for fields they set:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path resolved from sources 1 and 2)
//
// The main entry point is [GetClientConfig], which returns the validated
// client view with defaults applied. The HTTP adapter itself never touches
// the environment; it receives plain structs built from this package.
package config
