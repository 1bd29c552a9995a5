package blas1

import (
	"testing"
)

func TestVector32Addressing(t *testing.T) {
	tests := []struct {
		name string
		vals []float32
		inc  int
		want []float32 // expected buffer layout
	}{
		{
			name: "unit stride",
			vals: []float32{1, 2, 3},
			inc:  1,
			want: []float32{1, 2, 3},
		},
		{
			name: "stride two",
			vals: []float32{1, 2, 3},
			inc:  2,
			want: []float32{1, 0, 2, 0, 3},
		},
		{
			name: "negative unit stride",
			vals: []float32{1, 2, 3},
			inc:  -1,
			want: []float32{3, 2, 1},
		},
		{
			name: "negative stride two",
			vals: []float32{1, 2, 3},
			inc:  -2,
			want: []float32{3, 0, 2, 0, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := MakeVector32(t, tt.vals, tt.inc)

			if len(v.Data) != len(tt.want) {
				t.Fatalf("buffer length = %d, want %d", len(v.Data), len(tt.want))
			}
			for i, want := range tt.want {
				if v.Data[i] != want {
					t.Errorf("Data[%d] = %v, want %v", i, v.Data[i], want)
				}
			}

			// At must read back the logical order regardless of layout
			for i, want := range tt.vals {
				if got := v.At(i); got != want {
					t.Errorf("At(%d) = %v, want %v", i, got, want)
				}
			}
		})
	}
}

func TestVector32Start(t *testing.T) {
	tests := []struct {
		n, inc, want int
	}{
		{5, 1, 0},
		{5, 3, 0},
		{5, 0, 0},
		{5, -1, 4},
		{5, -3, 12},
		{1, -7, 0},
	}

	for _, tt := range tests {
		v := Vector32{N: tt.n, Inc: tt.inc}
		if got := v.start(); got != tt.want {
			t.Errorf("start() with n=%d inc=%d = %d, want %d", tt.n, tt.inc, got, tt.want)
		}
	}
}

func TestVectorCheck(t *testing.T) {
	tests := []struct {
		name    string
		v       Vector32
		wantErr func(error) bool // nil means no error expected
	}{
		{
			name: "valid unit stride",
			v:    Vector32{N: 3, Inc: 1, Data: make([]float32, 3)},
		},
		{
			name: "valid exact strided length",
			v:    Vector32{N: 3, Inc: 2, Data: make([]float32, 5)},
		},
		{
			name: "valid negative stride",
			v:    Vector32{N: 3, Inc: -2, Data: make([]float32, 5)},
		},
		{
			name: "valid zero increment single cell",
			v:    Vector32{N: 100, Inc: 0, Data: make([]float32, 1)},
		},
		{
			name: "zero length needs no buffer",
			v:    Vector32{N: 0, Inc: 1},
		},
		{
			name: "zero length ignores increment",
			v:    Vector32{N: 0, Inc: 0},
		},
		{
			name:    "negative length",
			v:       Vector32{N: -1, Inc: 1, Data: make([]float32, 4)},
			wantErr: IsDimensionError,
		},
		{
			name:    "buffer too small",
			v:       Vector32{N: 4, Inc: 1, Data: make([]float32, 3)},
			wantErr: IsBoundsError,
		},
		{
			name:    "buffer too small for stride",
			v:       Vector32{N: 3, Inc: 2, Data: make([]float32, 4)},
			wantErr: IsBoundsError,
		},
		{
			name:    "buffer too small for negative stride",
			v:       Vector32{N: 3, Inc: -2, Data: make([]float32, 4)},
			wantErr: IsBoundsError,
		},
		{
			name:    "zero increment empty buffer",
			v:       Vector32{N: 1, Inc: 0, Data: nil},
			wantErr: IsBoundsError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.v.check("Test")
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("check() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("check() = nil, want error")
			}
			if !tt.wantErr(err) {
				t.Errorf("check() = %v, wrong error class", err)
			}
		})
	}
}

func TestVector64Check(t *testing.T) {
	// The float64 validation shares the float32 logic; spot-check it.
	if err := (Vector64{N: 3, Inc: -1, Data: make([]float64, 3)}).check("Test"); err != nil {
		t.Errorf("valid view rejected: %v", err)
	}
	if err := (Vector64{N: -2, Inc: 1}).check("Test"); !IsDimensionError(err) {
		t.Errorf("negative length: got %v, want dimension error", err)
	}
	if err := (Vector64{N: 2, Inc: 4, Data: make([]float64, 4)}).check("Test"); !IsBoundsError(err) {
		t.Errorf("short buffer: got %v, want bounds error", err)
	}
}

func TestCheckPairMismatch(t *testing.T) {
	x := Vector32{N: 3, Inc: 1, Data: make([]float32, 3)}
	y := Vector32{N: 5, Inc: 1, Data: make([]float32, 5)}

	err := checkPair32("Test", x, y)
	if !IsDimensionError(err) {
		t.Fatalf("checkPair32 = %v, want dimension error", err)
	}
}
