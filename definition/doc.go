// Package definition reads and writes tabulated functions as YAML documents.
//
// A document describes a function in exactly one of three ways:
//
//	# uniform grid, y = 0
//	left: 0
//	right: 1
//	count: 11
//
//	# uniform grid with values
//	storage: linked
//	left: 0
//	right: 4
//	values: [0, 1, 4, 9, 16]
//
//	# explicit samples, as [x, y] pairs or {x, y} maps
//	points:
//	  - [0, 0]
//	  - {x: 1, y: 1}
//
// storage is "array" (the default) or "linked". Numbers may be YAML integers,
// floats or numeric strings. Mixing the modes, leaving a mode incomplete or
// using an unknown key yields an error wrapping errs.ErrInvalidDefinition.
// Errors raised while constructing the function itself, such as
// errs.ErrInvalidConstruction for left >= right, are returned unchanged.
package definition
