// Package storage is the client's durable key/value store: the terminal
// counterpart of browser local storage.
//
// Repository is implemented by SQLiteRepository (a single-table SQLite file,
// schema managed by embedded goose migrations) and by MemoryRepository for
// tests and throwaway sessions. Values are opaque bytes; an absent key reads
// as (nil, nil), and deleting an absent key is not an error.
package storage
