package value

// ToSlice flattens a proper list into a Go slice. If the list is
// improper (a non-pair, non-null final cdr), ok is false and the
// slice holds the proper-list prefix seen so far.
func ToSlice(list Value) (elems []Value, ok bool) {
	for {
		if IsNull(list) {
			return elems, true
		}
		if list.Tag() != Pair {
			return elems, false
		}
		elems = append(elems, list.Car())
		list = list.Cdr()
	}
}

// FromSlice builds a proper list terminated by the empty list,
// allocating pairs through h, with elements in slice order.
func FromSlice(h *Heap, elems []Value) Value {
	result := Null()
	for i := len(elems) - 1; i >= 0; i-- {
		result = h.NewPair(elems[i], result)
	}
	return result
}

// Length counts the number of pairs in a proper list, 0 for the empty
// list (§9 Open Question: count from 0, not 1).
func Length(list Value) (int, bool) {
	n := 0
	for !IsNull(list) {
		if list.Tag() != Pair {
			return n, false
		}
		n++
		list = list.Cdr()
	}
	return n, true
}

// Append concatenates proper lists, copying every list but the last.
func Append(h *Heap, lists []Value) Value {
	if len(lists) == 0 {
		return Null()
	}
	result := lists[len(lists)-1]
	for i := len(lists) - 2; i >= 0; i-- {
		elems, _ := ToSlice(lists[i])
		for j := len(elems) - 1; j >= 0; j-- {
			result = h.NewPair(elems[j], result)
		}
	}
	return result
}
