// Package memstore implements the store interfaces in process memory.
//
// It backs the "memory" database driver and the HTTP tests. All stores built
// from one DB share its data and lock, so relationship rules hold across them
// exactly as they do in PostgreSQL: ids are assigned from per-table
// sequences, drink titles are unique and deleting a movie or actor removes
// its casting links.
package memstore
