package scenic

import (
	"fmt"

	"github.com/colibri-cam/scenic-driver-skia/assets"
	"github.com/colibri-cam/scenic-driver-skia/canvas"
	"github.com/colibri-cam/scenic-driver-skia/fontkit"
	"github.com/colibri-cam/scenic-driver-skia/render"
	"github.com/colibri-cam/scenic-driver-skia/script"
)

// RootID is the reserved identifier of the root script. Submitting a
// buffer under it (or via SubmitScript) makes it the frame's program.
const RootID = render.RootID

// Driver ties the engine together: the scene of installed scripts, the
// image and typeface stores, and the executor. Submission and resource
// registration may happen from any goroutine; RenderFrame is meant to
// be called from a single render goroutine woken by Wake.
type Driver struct {
	scene    *render.Scene
	images   *assets.Store[canvas.Image]
	streams  *assets.Store[canvas.Image]
	fonts    *assets.Store[canvas.Typeface]
	executor *render.Executor
}

// New creates a Driver with an empty scene.
func New(opts ...Option) *Driver {
	o := driverOptions{
		maxDepth: render.DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.fallback == nil {
		o.fallback = fontkit.Fallback()
	}

	d := &Driver{
		scene:   render.NewScene(),
		images:  assets.NewStore[canvas.Image](),
		streams: assets.NewStore[canvas.Image](),
		fonts:   assets.NewStore[canvas.Typeface](),
	}
	d.executor = &render.Executor{
		Images:   d.images,
		Streams:  d.streams,
		Fonts:    d.fonts,
		Fallback: o.fallback,
		MaxDepth: o.maxDepth,
	}
	d.scene.SetClearColor(o.clearColor)
	return d
}

// SubmitScript decodes a buffer and installs it as the root script.
// On decode failure nothing is installed and the scene is unchanged.
func (d *Driver) SubmitScript(buf []byte) error {
	return d.SubmitScriptID(RootID, buf)
}

// SubmitScriptID decodes a buffer and installs it under the given
// identifier, replacing any previous script with that identifier. On
// decode failure nothing is installed.
func (d *Driver) SubmitScriptID(id string, buf []byte) error {
	ops, err := script.Decode(buf)
	if err != nil {
		return fmt.Errorf("submit script %q: %w", id, err)
	}
	d.scene.Install(id, ops)
	return nil
}

// SubmitScripts decodes and installs several scripts atomically: every
// buffer is decoded first, and if any fails none are installed.
func (d *Driver) SubmitScripts(batch map[string][]byte) error {
	decoded := make(map[string][]script.Op, len(batch))
	for id, buf := range batch {
		ops, err := script.Decode(buf)
		if err != nil {
			return fmt.Errorf("submit script %q: %w", id, err)
		}
		decoded[id] = ops
	}
	d.scene.InstallAll(decoded)
	return nil
}

// DeleteScript removes a script. Deleting the root clears the root
// designation; subsequent frames render only the clear color.
func (d *Driver) DeleteScript(id string) {
	d.scene.Remove(id)
}

// ResetScene removes all scripts and the root designation. Registered
// images and typefaces are kept.
func (d *Driver) ResetScene() {
	d.scene.Clear()
}

// SetClearColor sets the color every frame is cleared with before the
// root script runs.
func (d *Driver) SetClearColor(c canvas.Color) {
	d.scene.SetClearColor(c)
}

// ScriptCount returns the number of installed scripts.
func (d *Driver) ScriptCount() int {
	return d.scene.Count()
}

// PutImage registers a static image resource under an identifier,
// replacing any previous one.
func (d *Driver) PutImage(id string, img canvas.Image) {
	d.images.Put(id, img)
	d.scene.Wake()
}

// DeleteImage removes a static image resource.
func (d *Driver) DeleteImage(id string) {
	d.images.Delete(id)
	d.scene.Wake()
}

// PutStreamImage registers a streaming texture, one the embedding
// environment replaces frame to frame.
func (d *Driver) PutStreamImage(id string, img canvas.Image) {
	d.streams.Put(id, img)
	d.scene.Wake()
}

// DeleteStreamImage removes a streaming texture.
func (d *Driver) DeleteStreamImage(id string) {
	d.streams.Delete(id)
	d.scene.Wake()
}

// PutTypeface parses TTF or OTF font data and registers it under an
// identifier. The data is parsed once; scripts select it with the font
// operation.
func (d *Driver) PutTypeface(id string, data []byte) error {
	face, err := fontkit.Parse(data)
	if err != nil {
		return fmt.Errorf("put typeface %q: %w", id, err)
	}
	d.fonts.Put(id, face)
	d.scene.Wake()
	return nil
}

// DeleteTypeface removes a registered typeface. Scripts still naming it
// fall back to the built-in font.
func (d *Driver) DeleteTypeface(id string) {
	d.fonts.Delete(id)
	d.scene.Wake()
}

// RenderFrame runs one complete, non-preemptible pass: clear to the
// clear color, then execute the root script against the canvas.
func (d *Driver) RenderFrame(c canvas.Canvas) {
	d.executor.Render(c, d.scene)
}

// Wake returns the channel signaled after every mutation. The
// guarantee is at least one signal after any mutation; signals
// coalesce, so a receive may cover several mutations.
func (d *Driver) Wake() <-chan struct{} {
	return d.scene.WakeChan()
}
