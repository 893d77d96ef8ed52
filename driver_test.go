package scenic

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/colibri-cam/scenic-driver-skia/canvas"
	"github.com/colibri-cam/scenic-driver-skia/script"
)

// countingCanvas tallies canvas calls per method name.
type countingCanvas struct {
	clearColor canvas.Color
	counts     map[string]int
}

func newCountingCanvas() *countingCanvas {
	return &countingCanvas{counts: make(map[string]int)}
}

func (c *countingCanvas) bump(name string) { c.counts[name]++ }

func (c *countingCanvas) Clear(col canvas.Color) {
	c.clearColor = col
	c.bump("Clear")
}
func (c *countingCanvas) Save()                                  { c.bump("Save") }
func (c *countingCanvas) Restore()                               { c.bump("Restore") }
func (c *countingCanvas) Concat(canvas.Matrix)                   { c.bump("Concat") }
func (c *countingCanvas) ClipRect(w, h float32)                  { c.bump("ClipRect") }
func (c *countingCanvas) ClipPath(*canvas.Path, canvas.ClipOp)   { c.bump("ClipPath") }
func (c *countingCanvas) DrawLine(x0, y0, x1, y1 float32, p *canvas.Paint) {
	c.bump("DrawLine")
}
func (c *countingCanvas) DrawRect(w, h float32, p *canvas.Paint) { c.bump("DrawRect") }
func (c *countingCanvas) DrawRoundRect(w, h float32, radii [4]float32, p *canvas.Paint) {
	c.bump("DrawRoundRect")
}
func (c *countingCanvas) DrawCircle(radius float32, p *canvas.Paint) { c.bump("DrawCircle") }
func (c *countingCanvas) DrawOval(rx, ry float32, p *canvas.Paint)   { c.bump("DrawOval") }
func (c *countingCanvas) DrawPath(p *canvas.Path, paint *canvas.Paint) {
	c.bump("DrawPath")
}
func (c *countingCanvas) DrawImageRect(img canvas.Image, src, dst canvas.Rect, opacity float32) {
	c.bump("DrawImageRect")
}
func (c *countingCanvas) DrawText(text string, x, y float32, face canvas.Typeface, size float32, p *canvas.Paint) {
	c.bump("DrawText")
}

// rootScript returns an encoded buffer drawing one filled rectangle.
func rootScript() []byte {
	var enc script.Encoder
	enc.FillColor(canvas.ARGB(0xFF, 0xFF, 0, 0))
	enc.DrawRect(40, 20, script.DrawFill)
	return enc.Bytes()
}

func drainWake(d *Driver) {
	select {
	case <-d.Wake():
	default:
	}
}

func TestSubmitAndRender(t *testing.T) {
	d := New()
	if err := d.SubmitScript(rootScript()); err != nil {
		t.Fatalf("SubmitScript error: %v", err)
	}
	if got := d.ScriptCount(); got != 1 {
		t.Errorf("ScriptCount = %d, want 1", got)
	}

	c := newCountingCanvas()
	d.RenderFrame(c)
	if c.counts["Clear"] != 1 {
		t.Errorf("Clear called %d times, want 1", c.counts["Clear"])
	}
	if c.counts["DrawRect"] != 1 {
		t.Errorf("DrawRect called %d times, want 1", c.counts["DrawRect"])
	}
}

func TestSubmitScriptDecodeError(t *testing.T) {
	d := New()
	err := d.SubmitScript([]byte{0x00, 0xFF, 0x00, 0x00})
	if err == nil {
		t.Fatal("expected decode error")
	}
	var derr *script.DecodeError
	if !errors.As(err, &derr) {
		t.Errorf("error %v does not wrap *script.DecodeError", err)
	}
	if got := d.ScriptCount(); got != 0 {
		t.Errorf("ScriptCount after failed submit = %d, want 0", got)
	}
}

func TestSubmitScriptsAllOrNothing(t *testing.T) {
	d := New()
	err := d.SubmitScripts(map[string][]byte{
		RootID: rootScript(),
		"bad":  {0x00, 0xFF, 0x00, 0x00},
	})
	if err == nil {
		t.Fatal("expected decode error")
	}
	if got := d.ScriptCount(); got != 0 {
		t.Errorf("ScriptCount after failed batch = %d, want 0", got)
	}

	if err := d.SubmitScripts(map[string][]byte{
		RootID:  rootScript(),
		"child": rootScript(),
	}); err != nil {
		t.Fatalf("SubmitScripts error: %v", err)
	}
	if got := d.ScriptCount(); got != 2 {
		t.Errorf("ScriptCount = %d, want 2", got)
	}
}

func TestDeleteScriptClearsRoot(t *testing.T) {
	d := New()
	if err := d.SubmitScript(rootScript()); err != nil {
		t.Fatal(err)
	}
	d.DeleteScript(RootID)

	c := newCountingCanvas()
	d.RenderFrame(c)
	if c.counts["DrawRect"] != 0 {
		t.Errorf("DrawRect called %d times after root deletion, want 0", c.counts["DrawRect"])
	}
	if c.counts["Clear"] != 1 {
		t.Errorf("Clear called %d times, want 1", c.counts["Clear"])
	}
}

func TestResetScene(t *testing.T) {
	d := New()
	if err := d.SubmitScript(rootScript()); err != nil {
		t.Fatal(err)
	}
	if err := d.SubmitScriptID("child", rootScript()); err != nil {
		t.Fatal(err)
	}

	d.ResetScene()

	if got := d.ScriptCount(); got != 0 {
		t.Errorf("ScriptCount after reset = %d, want 0", got)
	}
	c := newCountingCanvas()
	d.RenderFrame(c)
	if c.counts["DrawRect"] != 0 {
		t.Error("reset scene still draws")
	}
}

func TestSetClearColor(t *testing.T) {
	bg := canvas.ARGB(0xFF, 0x10, 0x20, 0x30)
	d := New(WithClearColor(bg))

	c := newCountingCanvas()
	d.RenderFrame(c)
	if c.clearColor != bg {
		t.Errorf("clear color = %v, want %v", c.clearColor, bg)
	}

	bg2 := canvas.ARGB(0xFF, 0, 0, 0)
	d.SetClearColor(bg2)
	d.RenderFrame(c)
	if c.clearColor != bg2 {
		t.Errorf("clear color = %v, want %v", c.clearColor, bg2)
	}
}

func TestWakeSignaledOnMutation(t *testing.T) {
	d := New()
	drainWake(d) // New sets the clear color, which signals

	if err := d.SubmitScript(rootScript()); err != nil {
		t.Fatal(err)
	}
	select {
	case <-d.Wake():
	default:
		t.Error("no wake signal after submit")
	}

	// Coalescing: several mutations, one pending signal.
	d.SetClearColor(canvas.ARGB(0xFF, 1, 2, 3))
	d.DeleteScript("nope")
	<-d.Wake()
	select {
	case <-d.Wake():
		t.Error("wake signals did not coalesce")
	default:
	}
}

func TestPutTypeface(t *testing.T) {
	d := New()
	if err := d.PutTypeface("regular", goregular.TTF); err != nil {
		t.Fatalf("PutTypeface error: %v", err)
	}
	if err := d.PutTypeface("broken", []byte("nope")); err == nil {
		t.Error("expected error for invalid font data")
	}

	var enc script.Encoder
	enc.Font("regular")
	enc.FontSize(16)
	enc.DrawText("hi")
	if err := d.SubmitScript(enc.Bytes()); err != nil {
		t.Fatal(err)
	}
	c := newCountingCanvas()
	d.RenderFrame(c)
	if c.counts["DrawText"] != 1 {
		t.Errorf("DrawText called %d times, want 1", c.counts["DrawText"])
	}
}

func TestImageRegistration(t *testing.T) {
	d := New()
	d.PutImage("atlas", stubImage{})

	var enc script.Encoder
	enc.DrawSprites("atlas", []script.SpriteCmd{
		{SW: 8, SH: 8, DW: 8, DH: 8, Alpha: 1},
	})
	if err := d.SubmitScript(enc.Bytes()); err != nil {
		t.Fatal(err)
	}

	c := newCountingCanvas()
	d.RenderFrame(c)
	if c.counts["DrawImageRect"] != 1 {
		t.Errorf("DrawImageRect called %d times, want 1", c.counts["DrawImageRect"])
	}

	d.DeleteImage("atlas")
	c = newCountingCanvas()
	d.RenderFrame(c)
	if c.counts["DrawImageRect"] != 0 {
		t.Errorf("DrawImageRect called %d times after delete, want 0", c.counts["DrawImageRect"])
	}
}

type stubImage struct{}

func (stubImage) Size() (int, int) { return 8, 8 }
