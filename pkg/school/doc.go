// Package school implements the in-memory relationship graph for one
// session: a registry of students, instructors, and courses whose
// enrollment and assignment edges are kept symmetric on both sides by
// every operation.
package school
