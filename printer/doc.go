/*
Package printer renders the data structures of this module for humans.

Output is meant for consoles with a fixed width font. Element labels are
measured in “en”s, i.e. fixed width positions, taking East Asian wide
characters into account, and lines are wrapped at Config.Width. On terminals
labels are colored.

_________________________________________________________________________

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package printer

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'cow'
func tracer() tracing.Trace {
	return tracing.Select("cow")
}
