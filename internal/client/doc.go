// Package client implements the interactive admin console runtime.
//
// It wires the terminal UI flows, client services, and the background
// session keep-alive into a single process lifecycle.
package client
