package dbg

import "github.com/kr/pretty"

// Dump renders a value with its unexported fields, for debug logging of
// segments (slope and intercepts) and polygons (vertices and edges).
func Dump(v interface{}) string {
	return pretty.Sprint(v)
}
