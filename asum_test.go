package blas1

import (
	"math"
	"math/rand"
	"testing"
)

func TestSasumIdentity(t *testing.T) {
	tests := []struct {
		name string
		vals []float32
		inc  int
		want float32
	}{
		{"empty", nil, 1, 0},
		{"single positive", []float32{2.5}, 1, 2.5},
		{"single negative", []float32{-2.5}, 1, 2.5},
		{"mixed signs", []float32{-1, -2, 3}, 1, 6},
		{"strided", []float32{-1, -2, 3}, 3, 6},
		{"reverse", []float32{-1, -2, 3}, -1, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sasum(MakeVector32(t, tt.vals, tt.inc))
			if err != nil {
				t.Fatalf("Sasum failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Sasum = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDasumIdentity(t *testing.T) {
	tests := []struct {
		name string
		vals []float64
		inc  int
		want float64
	}{
		{"empty", nil, 1, 0},
		{"single", []float64{-7.25}, 1, 7.25},
		{"mixed signs", []float64{-1, -2, 3}, 1, 6},
		{"reverse strided", []float64{-1, -2, 3}, -2, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Dasum(MakeVector64(t, tt.vals, tt.inc))
			if err != nil {
				t.Fatalf("Dasum failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Dasum = %v, want %v", got, tt.want)
			}
		})
	}
}

// The contract fixes left-to-right accumulation at input precision, so the
// result must be bit-identical to a naive sequential sum of absolute
// values, at any stride, for vectors up to 10k elements.
func TestSasumMatchesNaiveAccumulation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, n := range []int{1, 2, 3, 7, 64, 100, 1000, 10000} {
		vals := make([]float32, n)
		for i := range vals {
			vals[i] = rng.Float32()*2 - 1
		}

		var naive float32
		for _, v := range vals {
			naive += float32(math.Abs(float64(v)))
		}

		for _, inc := range []int{1, 2, -1, -3} {
			got, err := Sasum(MakeVector32(t, vals, inc))
			if err != nil {
				t.Fatalf("n=%d inc=%d: Sasum failed: %v", n, inc, err)
			}
			if math.Float32bits(got) != math.Float32bits(naive) {
				t.Errorf("n=%d inc=%d: Sasum = %v (bits %#x), naive = %v (bits %#x), ULP diff %d",
					n, inc, got, math.Float32bits(got), naive, math.Float32bits(naive),
					Float32ULPDiff(got, naive))
			}
		}
	}
}

func TestDasumMatchesNaiveAccumulation(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for _, n := range []int{1, 5, 128, 10000} {
		vals := make([]float64, n)
		for i := range vals {
			vals[i] = rng.Float64()*2 - 1
		}

		var naive float64
		for _, v := range vals {
			naive += math.Abs(v)
		}

		got, err := Dasum(MakeVector64(t, vals, 1))
		if err != nil {
			t.Fatalf("n=%d: Dasum failed: %v", n, err)
		}
		if math.Float64bits(got) != math.Float64bits(naive) {
			t.Errorf("n=%d: Dasum = %v, naive = %v", n, got, naive)
		}
	}
}

func TestSasumSpecialValues(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	tests := []struct {
		name string
		vals []float32
		want func(float32) bool
	}{
		{
			name: "NaN propagates",
			vals: []float32{1, nan, 2},
			want: func(s float32) bool { return math.IsNaN(float64(s)) },
		},
		{
			name: "Inf propagates",
			vals: []float32{1, -inf, 2},
			want: func(s float32) bool { return math.IsInf(float64(s), 1) },
		},
		{
			name: "negative zeros sum to positive zero",
			vals: []float32{float32(math.Copysign(0, -1)), float32(math.Copysign(0, -1))},
			want: func(s float32) bool { return s == 0 && math.Signbit(float64(s)) == false },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sasum(MakeVector32(t, tt.vals, 1))
			if err != nil {
				t.Fatalf("Sasum failed: %v", err)
			}
			if !tt.want(got) {
				t.Errorf("Sasum = %v, failed predicate", got)
			}
		})
	}
}

func TestSasumZeroIncrement(t *testing.T) {
	// One cell addressed three times: three sequential reads of |-2|.
	x := Vector32{N: 3, Inc: 0, Data: []float32{-2}}
	got, err := Sasum(x)
	if err != nil {
		t.Fatalf("Sasum failed: %v", err)
	}
	if got != 6 {
		t.Errorf("Sasum = %v, want 6", got)
	}
	if x.Data[0] != -2 {
		t.Errorf("Sasum mutated its input: %v", x.Data[0])
	}
}

func TestSasumErrors(t *testing.T) {
	if _, err := Sasum(Vector32{N: -1, Inc: 1}); !IsDimensionError(err) {
		t.Errorf("negative n: got %v, want dimension error", err)
	}
	if _, err := Sasum(Vector32{N: 4, Inc: 2, Data: make([]float32, 6)}); !IsBoundsError(err) {
		t.Errorf("short buffer: got %v, want bounds error", err)
	}
}
