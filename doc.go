// Package scenic is a binary script engine for 2-D scenes: a decoder
// for the compact opcode wire format, a store of named scripts, and a
// stateful interpreter that replays them onto a canvas.
//
// The embedding environment submits encoded script buffers and
// registers image and typeface resources; a render loop waits on Wake
// and calls RenderFrame with a canvas backend. Decoding is strict and
// all-or-nothing per buffer, while execution never fails: missing
// scripts, images and fonts degrade silently so a stale reference
// cannot abort a frame.
//
//	drv := scenic.New()
//	if err := drv.SubmitScript(buf); err != nil {
//	    // malformed buffer, nothing was installed
//	}
//	go func() {
//	    for range drv.Wake() {
//	        drv.RenderFrame(c)
//	    }
//	}()
//
// By default the engine produces no log output; see SetLogger.
package scenic
