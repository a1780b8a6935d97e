// Package repository defines the lookup contract shared by entity stores and
// two generic implementations: Memory, seeded once and read-only afterwards,
// and Cached, a go-cache backed decorator for stores that do I/O.
package repository
