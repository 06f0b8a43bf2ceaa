package env

import "github.com/ondrovic/goschem/internal/value"

// htable is the hand-rolled open-chaining hash table §4.2 mandates in
// place of a bare Go map: power-of-two bucket count, a non-cryptographic
// avalanche mixer for the string hash, and a grow-on-load-factor
// policy. Frames are long-lived, so growth is the only resizing this
// needs — there is no shrink path.
type htable struct {
	buckets []*entry
	size    int
}

type entry struct {
	key  string
	val  value.Value
	next *entry
}

const initialBuckets = 8
const maxLoadFactor = 0.75

func newHTable() *htable {
	return &htable{buckets: make([]*entry, initialBuckets)}
}

// hashString is a 32-bit FNV-1a-style avalanche mix: any
// avalanche-good 32-bit mixer satisfies §4.2's policy without pulling
// in a MurmurHash2 implementation no example in the corpus carries.
func hashString(s string) uint32 {
	var h uint32 = 2166136261
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

func (t *htable) bucketIndex(key string) int {
	return int(hashString(key)) & (len(t.buckets) - 1)
}

func (t *htable) get(key string) (value.Value, bool) {
	for e := t.buckets[t.bucketIndex(key)]; e != nil; e = e.next {
		if e.key == key {
			return e.val, true
		}
	}
	return value.Value{}, false
}

func (t *htable) set(key string, v value.Value) {
	idx := t.bucketIndex(key)
	for e := t.buckets[idx]; e != nil; e = e.next {
		if e.key == key {
			e.val = v
			return
		}
	}
	t.buckets[idx] = &entry{key: key, val: v, next: t.buckets[idx]}
	t.size++
	if float64(t.size)/float64(len(t.buckets)) > maxLoadFactor {
		t.grow()
	}
}

func (t *htable) grow() {
	old := t.buckets
	t.buckets = make([]*entry, len(old)*2)
	for _, head := range old {
		for e := head; e != nil; {
			next := e.next
			idx := t.bucketIndex(e.key)
			e.next = t.buckets[idx]
			t.buckets[idx] = e
			e = next
		}
	}
}

// each invokes fn for every value currently stored, in no particular order.
func (t *htable) each(fn func(v value.Value)) {
	for _, head := range t.buckets {
		for e := head; e != nil; e = e.next {
			fn(e.val)
		}
	}
}
