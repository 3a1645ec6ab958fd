// Package store provides the durable session slot for the haus client.
//
// The slot holds one value, the logged-in username, and its presence is the
// sole source of truth for restoring a session on start. Implementations:
//   - SessionFileStore: JSON file under the home directory, optionally sealed
//     with a passphrase
//   - RedisSessionStore: a single Redis key
//   - MemorySessionStore: process memory, for tests
//
// All stores are safe for concurrent use.
package store
