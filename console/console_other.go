//go:build !js
// +build !js

package console

import (
	"fmt"
	"log"
	"strings"
)

func write(l level, args []interface{}) {
	if l == levelLog {
		log.Print(fmt.Sprintln(args...))
		return
	}
	log.Print(strings.ToUpper(string(l)) + " " + fmt.Sprintln(args...))
}
