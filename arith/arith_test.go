package arith

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b int32
		want int32
	}{
		{"zero", 0, 0, 0},
		{"small", 15, 27, 42},
		{"negative cancels", -5, 5, 0},
		{"both negative", -10, -32, -42},
		{"wraps at max", math.MaxInt32, 1, math.MinInt32},
		{"wraps at min", math.MinInt32, -1, math.MaxInt32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Add(tt.a, tt.b))
		})
	}
}

func TestFactorial(t *testing.T) {
	tests := []struct {
		n    uint32
		want uint64
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{5, 120},
		{10, 3628800},
		{12, 479001600},
		{20, 2432902008176640000},
	}
	for _, tt := range tests {
		got, err := Factorial(tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "factorial(%d)", tt.n)
	}
}

func TestFactorialOverflow(t *testing.T) {
	for _, n := range []uint32{21, 22, 100, math.MaxUint32} {
		_, err := Factorial(n)
		assert.ErrorIs(t, err, ErrOverflow, "factorial(%d)", n)
	}
}

func TestFactorialSat(t *testing.T) {
	got := FactorialSat(20)
	assert.Equal(t, uint64(2432902008176640000), got)

	// Everything past the representable range saturates to the sentinel.
	assert.Equal(t, uint64(math.MaxUint64), FactorialSat(21))
	assert.Equal(t, uint64(math.MaxUint64), FactorialSat(math.MaxUint32))
}

func TestIdempotent(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.Equal(t, int32(42), Add(15, 27))

		got, err := Factorial(10)
		require.NoError(t, err)
		assert.Equal(t, uint64(3628800), got)
	}
}

// TestConcurrentCalls checks that interleaved callers see results identical
// to single-threaded execution. There is no shared state to corrupt, so this
// is a regression guard against one ever being introduced.
func TestConcurrentCalls(t *testing.T) {
	want := make([]uint64, MaxFactorialInput+1)
	for n := range want {
		r, err := Factorial(uint32(n))
		require.NoError(t, err)
		want[n] = r
	}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(seed int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				n := uint32((seed + i) % (MaxFactorialInput + 1))
				got, err := Factorial(n)
				if err != nil {
					t.Errorf("factorial(%d) returned error: %v", n, err)
					return
				}
				if got != want[n] {
					t.Errorf("factorial(%d) = %d, want %d", n, got, want[n])
					return
				}
			}
		}(w)
	}
	wg.Wait()
}
