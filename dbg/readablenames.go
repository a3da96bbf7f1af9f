// Package dbg maps arbitrary pointers to stable, readable pet names.
// Quad-edge debugging means staring at rings of pointers; "NobleMarmot
// -> SunnyHeron" is a lot easier to follow across a trace than two hex
// addresses. The memo is never freed, so this is for debugging runs
// only.
package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Names are handed out in demand order; keeping them
	// nondeterministic reminds the reader that the same name does not
	// mean the same entity across runs.
	petname.NonDeterministicMode()
}

// Name returns the memoized readable name for obj, or "Ø" for nil.
func Name(obj interface{}) string {
	if obj == nil || reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
