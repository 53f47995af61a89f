package mmio

import (
	"sync"
	"testing"
)

func TestReplaceFieldWidths(t *testing.T) {
	testCases := []struct {
		width    uint8
		index    uint8
		value    uint32
		initial  uint32
		expected uint32
	}{
		{width: 1, index: 0, value: 1, initial: 0x00000000, expected: 0x00000001},
		{width: 1, index: 15, value: 1, initial: 0x00000000, expected: 0x00008000},
		{width: 1, index: 3, value: 0, initial: 0xFFFFFFFF, expected: 0xFFFFFFF7},
		{width: 2, index: 0, value: 0b11, initial: 0x00000000, expected: 0x00000003},
		{width: 2, index: 5, value: 0b10, initial: 0x00000000, expected: 0x00000800},
		{width: 2, index: 15, value: 0b01, initial: 0xFFFFFFFF, expected: 0x7FFFFFFF},
		{width: 4, index: 0, value: 0xA, initial: 0x00000000, expected: 0x0000000A},
		{width: 4, index: 7, value: 0xF, initial: 0x00000000, expected: 0xF0000000},
		{width: 4, index: 2, value: 0x5, initial: 0xFFFFFFFF, expected: 0xFFFFF5FF},
	}

	for i, tc := range testCases {
		var r Reg32
		r.Set(tc.initial)
		r.ReplaceField(tc.value, tc.width, tc.index)
		if got := r.Get(); got != tc.expected {
			t.Errorf("case %d: ReplaceField(%#x, w=%d, i=%d) on %#08x = %#08x, want %#08x",
				i, tc.value, tc.width, tc.index, tc.initial, got, tc.expected)
		}
	}
}

func TestReplaceFieldMasksValue(t *testing.T) {
	// A value wider than the field must not spill into neighbouring fields.
	var r Reg32
	r.ReplaceField(0xFF, 2, 4)
	if got := r.Get(); got != 0x300 {
		t.Errorf("oversized value leaked out of its field: %#08x", got)
	}
}

func TestReplaceFieldIdempotent(t *testing.T) {
	var r Reg32
	r.Set(0xDEADBEEF)
	for i := 0; i < 10; i++ {
		r.ReplaceField(0b10, 2, 6)
	}
	if got := r.Get() >> 12 & 0b11; got != 0b10 {
		t.Errorf("field not at written value after repeats: %#x", got)
	}
	// Everything outside field 6 must match the original value.
	want := uint32(0xDEADBEEF)&^(uint32(0b11)<<12) | uint32(0b10)<<12
	if got := r.Get(); got != want {
		t.Errorf("neighbouring fields perturbed: got %#08x, want %#08x", got, want)
	}
}

func TestReplaceFieldConcurrent(t *testing.T) {
	// Independent owners of different fields hammer one register; every
	// field must end at its owner's last written value.
	for _, width := range []uint8{1, 2, 4} {
		width := width
		fields := uint8(32) / width
		var r Reg32
		var wg sync.WaitGroup
		for idx := uint8(0); idx < fields; idx++ {
			idx := idx
			wg.Add(1)
			go func() {
				defer wg.Done()
				max := uint32(1)<<width - 1
				for v := uint32(0); v <= max; v++ {
					r.ReplaceField(v, width, idx)
				}
				r.ReplaceField(uint32(idx)&max, width, idx)
			}()
		}
		wg.Wait()

		for idx := uint8(0); idx < fields; idx++ {
			max := uint32(1)<<width - 1
			shift := uint(width) * uint(idx)
			got := r.Get() >> shift & max
			want := uint32(idx) & max
			if got != want {
				t.Errorf("width %d: field %d = %#x, want %#x (register %#08x)",
					width, idx, got, want, r.Get())
			}
		}
	}
}

func TestSetClearBits(t *testing.T) {
	var r Reg32
	r.SetBits(0x00F0)
	r.SetBits(0x0F00)
	if got := r.Get(); got != 0x0FF0 {
		t.Fatalf("SetBits: %#08x", got)
	}
	r.ClearBits(0x0300)
	if got := r.Get(); got != 0x0CF0 {
		t.Fatalf("ClearBits: %#08x", got)
	}
	if !r.HasBits(0x0C00) || r.HasBits(0x0301) {
		t.Errorf("HasBits inconsistent with register %#08x", r.Get())
	}
}

func TestReplaceBits(t *testing.T) {
	var r Reg32
	r.Set(0xFFFFFFFF)
	r.ReplaceBits(0b01, 0b11, 8)
	if got := r.Get(); got != 0xFFFFFDFF {
		t.Errorf("ReplaceBits: %#08x", got)
	}
}
