// Package types defines the roster schema, player and contract entities, the
// team hierarchy value object, configuration, and the standard errors shared
// by the store, resolver, editor, and CLI.
package types
