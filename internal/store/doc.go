// Package store defines the persistence interfaces and error taxonomy
// shared by all storage backends.
package store
