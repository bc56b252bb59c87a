// Package domain defines the core types for the For Honor roster manager.
//
// This package contains the two stored entities and the value types built
// from them for display.
//
// # Core Types
//
// Faction is a named group with a lore summary. It is the root entity.
//
// Character belongs to one faction and carries nullable attack and defense
// ratings. Reads that join against the faction table also fill FactionName.
//
// Dataset holds a complete set of rows for both tables and is used to describe
// the seed data written on first startup.
//
// Report is an ordered, titled result set handed to the codec package for
// rendering as a table, JSON or YAML.
//
// # Design Principles
//
// - No database or external dependencies
// - Stored entities are written once and never mutated
package domain
