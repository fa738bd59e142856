// Package radseek provides local, offline keyword retrieval over a
// directory tree of radar log files. It walks a corpus root up to a
// bounded depth, decodes candidate files as strict UTF-8, scores them
// against a tokenized query, and returns the top ranked files with a
// preview snippet around the first match.
//
// This package contains domain types, interfaces, and the pure matching
// core following Ben Johnson's Standard Package Layout. Implementations
// live in subdirectories named after their primary dependency or concern
// (e.g., fs/, sqlite/, search/).
package radseek
