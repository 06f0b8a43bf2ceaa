package value

import "testing"

func TestFromSliceToSliceRoundTrip(t *testing.T) {
	h := NewHeap()
	elems := []Value{Num(1), Num(2), Num(3)}
	list := FromSlice(h, elems)

	got, ok := ToSlice(list)
	if !ok {
		t.Fatalf("expected a proper list")
	}
	if len(got) != 3 || got[0].Num() != 1 || got[2].Num() != 3 {
		t.Fatalf("round trip mismatch: %v", got)
	}
}

func TestLengthCountsFromZero(t *testing.T) {
	if n, ok := Length(Null()); !ok || n != 0 {
		t.Fatalf("length of the empty list should be 0, got %d ok=%v", n, ok)
	}
	h := NewHeap()
	list := FromSlice(h, []Value{Num(1), Num(2)})
	if n, ok := Length(list); !ok || n != 2 {
		t.Fatalf("length should be 2, got %d ok=%v", n, ok)
	}
}

func TestLengthRejectsImproperList(t *testing.T) {
	h := NewHeap()
	improper := h.NewPair(Num(1), Num(2))
	if _, ok := Length(improper); ok {
		t.Fatalf("length of an improper list should report ok=false")
	}
}

func TestAppendCopiesAllButLast(t *testing.T) {
	h := NewHeap()
	a := FromSlice(h, []Value{Num(1), Num(2)})
	b := FromSlice(h, []Value{Num(3), Num(4)})

	result := Append(h, []Value{a, b})
	got, ok := ToSlice(result)
	if !ok || len(got) != 4 {
		t.Fatalf("expected a 4-element proper list, got %v ok=%v", got, ok)
	}

	// The tail of the result should share structure with b, not copy it.
	resultTail := result.Cdr().Cdr()
	if resultTail.Cell() != b.Cell() {
		t.Fatalf("append should share the last list rather than copy it")
	}
}
