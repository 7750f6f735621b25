// Package client assembles the sync client: local storage, transport,
// engine, scheduler and background workers, with an explicit lifecycle
// owned by the composition root.
package client
