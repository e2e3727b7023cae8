// Package filter builds composable query predicates over tasks.
//
// A Criteria value carries an arbitrary subset of independent filter
// dimensions; every unset dimension is a no-op. Combine translates a
// Criteria into a single Predicate, an immutable expression tree that can
// be evaluated in memory against a domain.Task or compiled into a SQL
// WHERE fragment by the storage layer. Unset criteria compose as
// tautologies, so adding filters only ever narrows the result set.
package filter
