// Package service implements the read-side business logic of the roster.
//
// QueryService sits between the menu handler and the repository. It exposes
// the five fixed queries (all factions, all characters, characters of a
// faction, best attacker and best defender of a faction) and wraps each
// result in a domain.Report for the codec package.
//
// A faction ID that matches nothing is not an error: the queries return an
// empty slice and the report renders as empty. Parsing the ID typed by the
// user is the caller's concern.
package service
