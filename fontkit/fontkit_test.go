package fontkit

import (
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestParse(t *testing.T) {
	f, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if f == nil {
		t.Fatal("Parse returned nil face")
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse([]byte("not a font")); err == nil {
		t.Error("expected error for invalid font data")
	}
}

func TestFallback(t *testing.T) {
	a := Fallback()
	b := Fallback()
	if a == nil {
		t.Fatal("Fallback returned nil")
	}
	if a != b {
		t.Error("Fallback should return the same shared face")
	}
}

func TestMeasure(t *testing.T) {
	f := Fallback()

	if m := f.Measure("", 16); m.Advance != 0 {
		t.Errorf("empty string advance = %v, want 0", m.Advance)
	}

	m := f.Measure("hello", 16)
	if m.Advance <= 0 {
		t.Errorf("advance = %v, want positive", m.Advance)
	}
	if m.Ascent <= 0 {
		t.Errorf("ascent = %v, want positive", m.Ascent)
	}
	if m.Descent <= 0 {
		t.Errorf("descent = %v, want positive", m.Descent)
	}

	// Advance grows with text length.
	if longer := f.Measure("hello world", 16); longer.Advance <= m.Advance {
		t.Errorf("Advance(%q) = %v should be > Advance(%q) = %v",
			"hello world", longer.Advance, "hello", m.Advance)
	}

	// Advance scales with size.
	if bigger := f.Measure("hello", 32); bigger.Advance <= m.Advance {
		t.Errorf("advance at size 32 = %v should be > advance at size 16 = %v",
			bigger.Advance, m.Advance)
	}
}

func TestMeasureNormalization(t *testing.T) {
	f := Fallback()
	composed := f.Measure("caf\u00e9", 16)
	decomposed := f.Measure("cafe\u0301", 16)
	if composed.Advance != decomposed.Advance {
		t.Errorf("composed advance %v != decomposed advance %v",
			composed.Advance, decomposed.Advance)
	}
}

func TestMeasureConcurrent(t *testing.T) {
	f := Fallback()
	want := f.Measure("concurrent", 14)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if got := f.Measure("concurrent", 14); got != want {
					t.Errorf("concurrent measure = %+v, want %+v", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}
