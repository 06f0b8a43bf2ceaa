package value

// Heap owns the intrusive singly-linked list of every live compound
// Cell (§3.2, §4.5). Allocation always inserts at the head; the
// collector (internal/gc) walks this list during sweep.
type Heap struct {
	head  *Cell
	count int64 // allocation counter, for GC heuristics and reporting
}

// NewHeap creates an empty heap.
func NewHeap() *Heap {
	return &Heap{}
}

// Head returns the first live cell, or nil if the heap is empty.
func (h *Heap) Head() *Cell { return h.head }

// Allocations returns the number of cells allocated since startup
// (monotonic; not decremented by sweeps).
func (h *Heap) Allocations() int64 { return h.count }

func (h *Heap) push(c *Cell) {
	c.next = h.head
	h.head = c
	h.count++
}

// NewPair allocates a pair cell with the given head/tail.
func (h *Heap) NewPair(head, tail Value) Value {
	c := &Cell{tag: Pair, head: head, tail: tail}
	h.push(c)
	return Value{tag: Pair, cell: c}
}

// NewString allocates a mutable string cell with its own backing array.
func (h *Heap) NewString(s string) Value {
	buf := make([]byte, len(s))
	copy(buf, s)
	c := &Cell{tag: String, str: buf}
	h.push(c)
	return Value{tag: String, cell: c}
}

// NewStringN allocates an n-byte string cell filled with fill.
func (h *Heap) NewStringN(n int, fill byte) Value {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = fill
	}
	c := &Cell{tag: String, str: buf}
	h.push(c)
	return Value{tag: String, cell: c}
}

// NewVector allocates a vector cell backed by elems (not copied).
func (h *Heap) NewVector(elems []Value) Value {
	c := &Cell{tag: Vector, elems: elems}
	h.push(c)
	return Value{tag: Vector, cell: c}
}

// NewBuiltin allocates a procedure cell wrapping a built-in function.
func (h *Heap) NewBuiltin(name string, fn BuiltinFunc) Value {
	c := &Cell{tag: Procedure, proc: &ProcData{Name: name, Fn: fn}}
	h.push(c)
	return Value{tag: Procedure, cell: c}
}

// NewClosure allocates a procedure cell wrapping a user lambda.
func (h *Heap) NewClosure(name string, formals, body Value, env Env) Value {
	c := &Cell{tag: Procedure, proc: &ProcData{Name: name, Formals: formals, Body: body, Env: env}}
	h.push(c)
	return Value{tag: Procedure, cell: c}
}

// NewPort allocates a port cell.
func (h *Heap) NewPort(p *PortData, input bool) Value {
	tag := OutputPort
	if input {
		tag = InputPort
	}
	c := &Cell{tag: tag, port: p}
	h.push(c)
	return Value{tag: tag, cell: c}
}
