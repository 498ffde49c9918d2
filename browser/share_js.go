//go:build js
// +build js

package browser

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/jokes101/card"
)

// await blocks the calling goroutine until p settles.
func await(p *js.Object) error {
	ch := make(chan error, 1)
	p.Call("then",
		func() { ch <- nil },
		func(reason *js.Object) { ch <- &js.Error{Object: reason} },
	)
	return <-ch
}

func blob(data []byte, mime string) *js.Object {
	return js.Global.Get("Blob").New([]interface{}{data}, map[string]interface{}{"type": mime})
}

// Clipboard writes images with the async clipboard API. WriteImage must be
// called from a goroutine, never directly from an event handler.
type Clipboard struct{}

// WriteImage implements card.Clipboard.
func (Clipboard) WriteImage(data []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if jsErr, ok := r.(*js.Error); ok {
				err = jsErr
				return
			}
			panic(r)
		}
	}()
	clip := js.Global.Get("navigator").Get("clipboard")
	item := js.Global.Get("ClipboardItem")
	if Missing(clip) || Missing(item) || Missing(clip.Get("write")) {
		return card.ErrNoClipboard
	}
	entry := js.Global.Get("Object").New()
	entry.Set("image/png", blob(data, "image/png"))
	return await(clip.Call("write", []interface{}{item.New(entry)}))
}

// Download saves files through a temporary anchor with a download
// attribute.
type Downloader struct{}

// Download implements card.Downloader.
func (Downloader) Download(name string, data []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if jsErr, ok := r.(*js.Error); ok {
				err = jsErr
				return
			}
			panic(r)
		}
	}()
	url := js.Global.Get("URL")
	href := url.Call("createObjectURL", blob(data, "image/png"))
	a := Doc().Call("createElement", "a")
	a.Set("href", href)
	a.Set("download", name)
	body := Doc().Get("body")
	body.Call("appendChild", a)
	a.Call("click")
	a.Call("remove")
	js.Global.Call("setTimeout", func() { url.Call("revokeObjectURL", href) }, 0)
	return nil
}
