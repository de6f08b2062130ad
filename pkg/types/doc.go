// Package types defines the entity types, update requests, result rows,
// configuration, and error taxonomy shared by the registrar store and the
// in-memory relationship graph.
package types
