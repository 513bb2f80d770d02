package canonical

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/formulae"
	"github.com/npillmayer/formulae/expr"
)

// IsMatrix checks if e is a list of lists of equal, non-zero length.
// If it is, the number of columns is returned.
func IsMatrix(e *expr.Expression) (int, bool) {
	if !formulae.IsList(e.Tag()) || e.Len() == 0 {
		return 0, false
	}
	cols := e.Child(0).Len()
	if cols == 0 {
		return 0, false
	}
	for _, row := range e.Children() {
		if !formulae.IsList(row.Tag()) || row.Len() != cols {
			return 0, false
		}
	}
	return cols, true
}
