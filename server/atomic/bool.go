package atomic

import "sync/atomic"

// Bool is a boolean that can be read and written from multiple goroutines.
// The zero value is false.
type Bool struct {
	val int32
}

func getValueFromBool(b bool) int32 {
	var i int32

	if b {
		i = 1
	}

	return i
}

// CompareAndSwap sets the value only when the current value is !value, and
// reports whether the value was set.
func (b *Bool) CompareAndSwap(value bool) bool {
	return atomic.CompareAndSwapInt32(&b.val, getValueFromBool(!value), getValueFromBool(value))
}

// Swap stores value and reports whether it differs from the previous value.
func (b *Bool) Swap(value bool) (changed bool) {
	i := getValueFromBool(value)

	return atomic.SwapInt32(&b.val, i) != i
}

func (b *Bool) Set(value bool) {
	atomic.StoreInt32(&b.val, getValueFromBool(value))
}

func (b *Bool) Get() bool {
	return atomic.LoadInt32(&b.val) != 0
}
