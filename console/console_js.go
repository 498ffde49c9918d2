//go:build js
// +build js

package console

import "github.com/gopherjs/gopherjs/js"

func write(l level, args []interface{}) {
	c := js.Global.Get("console")
	if c == nil || c == js.Undefined {
		return
	}
	c.Call(string(l), args...)
}
