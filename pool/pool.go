// Package pool provides reusable worker-slot pools used to bound the
// concurrency of the parallel executor (see package executor). A slot
// need not carry any state of its own: for repository synchronization the
// pooled value is just a token proving a concurrency slot was acquired,
// but the pool is generic over whatever a caller's newFn produces.
package pool

// Pool is an interface that defines methods on a pool of reusable slots.
type Pool interface {
	// Get returns a slot from the pool, creating one (or blocking until
	// one is returned) according to the implementation's capacity policy.
	Get() interface{}

	// Put returns a slot to the pool.
	Put(interface{})
}
