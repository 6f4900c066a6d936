// Package workq provides a FIFO work queue that turns recursive algorithms
// into iterative ones.
//
// A Queue is seeded with initial work items and then consumed with Next or
// All. Work discovered while processing an item may be pushed back with Add
// or Extend at any time, including from inside a range loop over All; the new
// items are yielded by the same loop. By default a Queue accepts each item
// (or each derived key, see NewWithKey) at most once over its lifetime, so a
// graph walk never revisits a node even after it has been consumed.
//
// A Queue is not safe for concurrent use. Callers sharing one between
// goroutines must serialize access themselves.
package workq
