package pool

// fixed is a bounded pool: at most capacity distinct slots are ever
// created by newFn. A Get beyond capacity blocks until a Put happens,
// which is exactly the "worker pool of fixed width num_jobs" bound the
// parallel executor needs.
type fixed struct {
	available chan interface{}
	all       chan interface{}
	buf       chan interface{}
	newFn     func() interface{}
}

// NewFixed creates a pool that never holds more than capacity live slots.
// newFn is called lazily, at most capacity times, to create a new slot
// value; callers that don't need per-slot state can pass a newFn that
// returns a trivial marker value.
func NewFixed(capacity uint, newFn func() interface{}) Pool {
	return &fixed{
		available: make(chan interface{}, capacity),
		all:       make(chan interface{}, capacity),
		buf:       make(chan interface{}, 1024),
		newFn:     newFn,
	}
}

func (p *fixed) Get() interface{} {
	select {
	case el := <-p.available:
		return el

	case el := <-p.buf:
		return el

	default:
		var el interface{}

		select {
		case p.all <- nil:
			el = p.newFn()
		case el = <-p.available:
		}
		return el
	}
}

func (p *fixed) Put(el interface{}) {
	select {
	case p.available <- el:
	default:
	}
}
