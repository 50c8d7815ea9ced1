// Package engine finds exact k-mer seeds between a query and an indexed
// database and extends each seed into an ungapped, X-drop scored alignment.
// It is domain-only: it never imports cli, app, writers, or pipeline.
package engine
