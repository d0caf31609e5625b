package ports

/*
StringProber retrieves a string of unknown length through a BufferQuery,
returning a freshly owned, NUL-terminated buffer sized exactly to the
content plus its terminator, or probe.ErrNotFound if the query's context
is invalid or the query never succeeds.
*/
type StringProber interface {
	Probe(q BufferQuery) ([]rune, error)
}
