// Package observability records an append-only JSON Lines audit trail of
// the mutations taskmanager performs on the project collection.
package observability
