//go:build js
// +build js

package effects

import (
	"fmt"

	"github.com/gopherjs/gopherjs/js"
)

// DOM spawns bursts as absolutely positioned elements. The keyframes
// referenced here live in the page stylesheet.
type DOM struct {
	Doc *js.Object
}

// NewDOM returns a surface on the current document.
func NewDOM() *DOM {
	return &DOM{Doc: js.Global.Get("document")}
}

type node struct {
	el *js.Object
}

func (n node) Remove() {
	n.el.Call("remove")
}

// Spawn builds the elements of b.
func (d *DOM) Spawn(b Burst) Handle {
	parent := d.Doc.Get("body")
	if b.Host != "" {
		if host := d.Doc.Call("getElementById", b.Host); host != nil && host != js.Undefined {
			parent = host
		}
	}

	switch b.Kind {
	case Sparkle:
		parent.Get("style").Set("position", "relative")
		return d.group(parent, "sparkle-layer", "position:absolute;inset:0;pointer-events:none;", b.Dots, sparkleCSS)
	case Celebration:
		return d.group(parent, "celebration-layer", "position:fixed;inset:0;pointer-events:none;z-index:9999;", b.Dots, celebrationCSS)
	case Confetti:
		return d.group(parent, "confetti-layer", "position:fixed;inset:0;pointer-events:none;z-index:999;", b.Dots, confettiCSS)
	case Ripple:
		el := d.div("theme-ripple", "position:fixed;top:50%;left:50%;width:0;height:0;border-radius:50%;"+
			"background:radial-gradient(circle, rgba(255,255,255,0.3) 0%, transparent 70%);"+
			"transform:translate(-50%,-50%);animation:rippleExpand 1s ease-out forwards;pointer-events:none;z-index:9998;")
		parent.Call("appendChild", el)
		return node{el}
	case Notice:
		el := d.Doc.Call("getElementById", "shareNotification")
		if el == nil || el == js.Undefined {
			return nil
		}
		if b.Text != "" {
			el.Set("textContent", b.Text)
		}
		el.Get("classList").Call("add", "show")
		return classNode{el, "show"}
	}
	return nil
}

type classNode struct {
	el    *js.Object
	class string
}

func (n classNode) Remove() {
	n.el.Get("classList").Call("remove", n.class)
}

func (d *DOM) div(class, css string) *js.Object {
	el := d.Doc.Call("createElement", "div")
	el.Set("className", class)
	el.Get("style").Set("cssText", css)
	return el
}

func (d *DOM) group(parent *js.Object, class, css string, dots []Dot, style func(Dot) string) Handle {
	layer := d.div(class, css)
	for _, dot := range dots {
		layer.Call("appendChild", d.div("", style(dot)))
	}
	parent.Call("appendChild", layer)
	return node{layer}
}

func sparkleCSS(d Dot) string {
	return fmt.Sprintf("position:absolute;width:4px;height:4px;background:%s;border-radius:50%%;"+
		"animation:sparkleFloat 2s ease-out forwards;left:%.2f%%;top:%.2f%%;box-shadow:0 0 10px %s;",
		d.Color, d.X, d.Y, d.Color)
}

func celebrationCSS(d Dot) string {
	return fmt.Sprintf("position:absolute;width:8px;height:8px;background:%s;border-radius:50%%;"+
		"left:%.0f%%;top:%.0f%%;--random-x:%.1fpx;--random-y:%.1fpx;"+
		"animation:celebrate 3s ease-out %.3fs forwards;",
		d.Color, d.X, d.Y, d.DX, d.DY, d.Delay.Seconds())
}

func confettiCSS(d Dot) string {
	return fmt.Sprintf("position:absolute;width:10px;height:10px;background-color:%s;border-radius:50%%;"+
		"top:%.2fvh;left:%.2fvw;opacity:0;animation:confettiFall 2s ease-out forwards;",
		d.Color, d.Y, d.X)
}
