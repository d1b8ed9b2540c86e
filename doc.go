/*
Package streaming provides lazy, fallible iterators that lend out their
current element instead of returning it by value.

A StreamingIterator is advanced with Advance and observed with Get.  Get
returns a pointer into storage owned by the iterator, so an element can be
reused or overwritten by the next Advance;  copy it with Cloned to keep it.
Advance may fail, and every adaptor in this package treats a failure as the
end of the iteration after returning the error once.

Adaptors (Filter, Map, MapRef, Skip, SkipWhile, Take, TakeWhile, Fuse,
ByRef) wrap an iterator without advancing it.  Query functions (All, Any,
Count, Find, Position, Nth, Reduce) consume it.  Stream wraps an iterator so
that these can be chained as methods, with optional tracing of every step.
*/
package streaming
