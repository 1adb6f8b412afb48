package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts geometry values into random readable names, so that log lines
// about the same polygon or segment are easy to match up by eye. It flagrantly
// leaks memory but generates the names lazily, so it's not a problem unless
// you're actually using it.
//
// Values are keyed by their string form, so equal geometry gets the same name
// within a run.

var memo map[string]string

func init() {
	memo = make(map[string]string)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj fmt.Stringer) string {
	if obj == nil {
		return "Ø"
	}

	key := obj.String()
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}
