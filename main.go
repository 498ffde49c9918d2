//go:build js
// +build js

package main

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/jokes101/console"
	"github.com/simukka/jokes101/page"
)

func main() {
	start := func() {
		p, err := page.New()
		if err != nil {
			console.Error("jokes101:", err.Error())
			return
		}
		p.Start()

		// Expose a small handle for debugging from the console.
		js.Global.Set("Jokes101", map[string]interface{}{
			"next":  p.NextJoke,
			"share": p.Share,
			"stop":  p.Stop,
		})
	}

	doc := js.Global.Get("document")
	if doc.Get("readyState").String() == "loading" {
		doc.Call("addEventListener", "DOMContentLoaded", func() { start() })
		return
	}
	start()
}
