package ports

/*
BufferQuery is the measure-or-fill capability the buffer probe drives: the
caller supplies a destination buffer and the query either fills it or tells
the caller how to size it. Two environment conventions exist:

Convention A ("reports required size directly"): with an empty destination
the query returns the exact number of characters needed, including the
terminator; with a large-enough destination it fills it and returns the
number written, excluding the terminator.

Convention B ("signals insufficiency only"): the query returns
probe.ErrInsufficientBuffer until the destination is large enough, then
fills it and returns the number written, excluding the terminator.

Which convention an implementation follows is part of its contract; the
matching StringProber must be used.
*/
type BufferQuery interface {
	Query(dst []rune) (int, error)
}
