// Package store keeps the latest timeline result per scenario in memory,
// so watch mode can report how an estimate moved after a config change.
// Nothing is persisted to disk.
package store
