package model

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
)

func TestResizeNoOp(t *testing.T) {
	b := mustParse(t, "#..\n..#")
	next, resized, err := Resize(b, 3, 2)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	if resized {
		t.Error("Expected no-op for unchanged dimensions")
	}
	if next != nil {
		t.Error("Expected nil board for a no-op")
	}
}

func TestResize(t *testing.T) {
	const source = `
#.#
.##`

	tests := []struct {
		name          string
		width, height int
		want          string
	}{
		{
			name:  "grow both",
			width: 5, height: 4,
			want: `
#.#..
.##..
.....
.....`,
		},
		{
			name:  "shrink both",
			width: 2, height: 1,
			want: "#.",
		},
		{
			name:  "grow width shrink height",
			width: 4, height: 1,
			want: "#.#.",
		},
		{
			name:  "shrink width grow height",
			width: 1, height: 3,
			want: "#\n.\n.",
		},
		{
			name:  "height only",
			width: 3, height: 3,
			want: `
#.#
.##
...`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustParse(t, source)
			before := b.Clone()

			next, resized, err := Resize(b, tt.width, tt.height)
			if err != nil {
				t.Fatalf("Resize failed: %v", err)
			}
			if !resized {
				t.Fatal("Expected a resized board")
			}
			if want := mustParse(t, tt.want); !next.Equal(want) {
				t.Errorf("Expected:\n%s\ngot:\n%s", want, next)
			}
			if !b.Equal(before) {
				t.Error("Expected input board to be unchanged")
			}
		})
	}
}

func TestResizeInvalidDimensions(t *testing.T) {
	b := mustParse(t, "##")
	for _, dims := range []Dimensions{{0, 1}, {1, 0}, {-4, 2}} {
		if _, _, err := Resize(b, dims.Width, dims.Height); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("%+v: expected ErrInvalidDimensions, got %v", dims, err)
		}
	}
}

func TestResizeRoundTrip(t *testing.T) {
	b, err := NewBoard(6, 5, 18, WithRand(rand.New(rand.NewSource(7))))
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}

	mid, _, err := Resize(b, 3, 7)
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	back, _, err := Resize(mid, b.Width(), b.Height())
	if err != nil {
		t.Fatalf("Resize failed: %v", err)
	}

	for r := range b.Height() {
		for c := range b.Width() {
			want := b.Get(r, c)
			if c >= 3 {
				want = Dead
			}
			if got := back.Get(r, c); got != want {
				t.Errorf("Cell (%d, %d): expected %d, got %d", r, c, want, got)
			}
		}
	}
}
