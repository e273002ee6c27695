package board

import "testing"

func TestAddIsIdempotent(t *testing.T) {
	b := New(0, 9)
	if !b.AddStop(3) {
		t.Errorf("Expected first AddStop(3) to report newly set")
	}
	if b.AddStop(3) {
		t.Errorf("Expected duplicate AddStop(3) to report already set")
	}
	if !b.AddCallUp(3) {
		t.Errorf("Expected first AddCallUp(3) to report newly set")
	}
	if b.AddCallUp(3) {
		t.Errorf("Expected duplicate AddCallUp(3) to report already set")
	}
	if !b.AddCallDown(3) {
		t.Errorf("Expected first AddCallDown(3) to report newly set")
	}
	if b.AddCallDown(3) {
		t.Errorf("Expected duplicate AddCallDown(3) to report already set")
	}
}

func TestEdgeFloorCallsRefused(t *testing.T) {
	b := New(0, 9)
	if b.AddCallUp(9) {
		t.Errorf("Expected up call on the top floor to be refused")
	}
	if b.AddCallDown(0) {
		t.Errorf("Expected down call on the bottom floor to be refused")
	}
	if b.CallsUp[9] || b.CallsDown[0] {
		t.Errorf("Expected board to stay unchanged after refused calls")
	}
}

func TestOutOfRangeRefused(t *testing.T) {
	b := New(0, 9)
	if b.AddStop(-1) || b.AddStop(10) || b.AddCallUp(17) || b.AddCallDown(-3) {
		t.Errorf("Expected out-of-range floors to be refused")
	}
}

func TestNextStopAbove(t *testing.T) {
	testCases := []struct {
		name     string
		setup    func(b *Board)
		current  int
		expected int
	}{
		{
			name:     "no pending work returns current",
			setup:    func(b *Board) {},
			current:  4,
			expected: 4,
		},
		{
			name: "nearest stop or up call wins",
			setup: func(b *Board) {
				b.AddStop(7)
				b.AddCallUp(5)
			},
			current:  2,
			expected: 5,
		},
		{
			name: "falls back to highest down call",
			setup: func(b *Board) {
				b.AddCallDown(4)
				b.AddCallDown(8)
			},
			current:  2,
			expected: 8,
		},
		{
			name: "up work preferred over down calls",
			setup: func(b *Board) {
				b.AddStop(3)
				b.AddCallDown(8)
			},
			current:  0,
			expected: 3,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := New(0, 9)
			tc.setup(b)
			if got := b.NextStopAbove(tc.current); got != tc.expected {
				t.Errorf("Expected NextStopAbove(%d) to be %d, got %d", tc.current, tc.expected, got)
			}
		})
	}
}

func TestNextStopBelow(t *testing.T) {
	testCases := []struct {
		name     string
		setup    func(b *Board)
		current  int
		expected int
	}{
		{
			name:     "no pending work returns current",
			setup:    func(b *Board) {},
			current:  4,
			expected: 4,
		},
		{
			name: "nearest stop or down call wins",
			setup: func(b *Board) {
				b.AddStop(1)
				b.AddCallDown(4)
			},
			current:  6,
			expected: 4,
		},
		{
			name: "falls back to lowest up call",
			setup: func(b *Board) {
				b.AddCallUp(2)
				b.AddCallUp(5)
			},
			current:  8,
			expected: 2,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := New(0, 9)
			tc.setup(b)
			if got := b.NextStopBelow(tc.current); got != tc.expected {
				t.Errorf("Expected NextStopBelow(%d) to be %d, got %d", tc.current, tc.expected, got)
			}
		})
	}
}

func TestCounts(t *testing.T) {
	b := New(0, 9)
	b.AddStop(2)
	b.AddCallUp(2)
	b.AddCallDown(2)
	b.AddStop(6)
	b.AddCallUp(8)

	if got := b.CountAbove(4); got != 2 {
		t.Errorf("Expected CountAbove(4) to be 2, got %d", got)
	}
	if got := b.CountBelow(4); got != 3 {
		t.Errorf("Expected CountBelow(4) to be 3, got %d", got)
	}
	if got := b.CountAbove(9); got != 0 {
		t.Errorf("Expected CountAbove(9) to be 0, got %d", got)
	}
	if got := b.CountBelow(0); got != 0 {
		t.Errorf("Expected CountBelow(0) to be 0, got %d", got)
	}
}

func TestClearReportsPrevious(t *testing.T) {
	b := New(0, 9)
	b.AddStop(5)
	if !b.ClearStop(5) {
		t.Errorf("Expected ClearStop(5) to report the flag was set")
	}
	if b.ClearStop(5) {
		t.Errorf("Expected second ClearStop(5) to report the flag was clear")
	}
}

func TestNegativeFloorRange(t *testing.T) {
	b := New(-2, 3)
	if !b.AddStop(-1) {
		t.Errorf("Expected AddStop(-1) to succeed on a -2..3 board")
	}
	if got := b.NextStopBelow(3); got != -1 {
		t.Errorf("Expected NextStopBelow(3) to be -1, got %d", got)
	}
	if b.AddCallDown(-2) {
		t.Errorf("Expected down call on bottom floor -2 to be refused")
	}
}
