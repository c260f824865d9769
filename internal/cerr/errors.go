// Package cerr holds the catalog error taxonomy. Every failure surfaced
// by the catalog layer is either one of these sentinels (possibly
// wrapped) or an unclassified storage failure.
package cerr

import "errors"

var (
	// ErrNotFound: the addressed entity is absent, or a destructive
	// statement affected zero rows.
	ErrNotFound = errors.New("not found")

	// ErrBadRequest: malformed input detected before any write (empty
	// required array, self-relation, ambiguous thumbnail state).
	ErrBadRequest = errors.New("bad request")

	// ErrDuplicateEdge: the related-products uniqueness constraint
	// rejected an insert. Non-fatal for callers ("already related").
	ErrDuplicateEdge = errors.New("relation already exists")

	// ErrDuplicateComment: an identical comment (case-insensitive
	// email/name/body) already exists on the product.
	ErrDuplicateComment = errors.New("comment already exists")
)
