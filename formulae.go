package formulae

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// --- Well-known tags -------------------------------------------------------

// Tags name the syntactic or semantic category of an expression node.
// We define only the handful of tags the core itself has to know about;
// domain modules are free to introduce as many others as they like.
const (
	ListTag   = "List.List"     // ordered list of expressions
	StringTag = "String.String" // string literal, value in attribute "Value"
	NumberTag = "Math.Number"   // decimal number, value in attribute "Value"
	ErrorTag  = "Error"         // marker for a failed sub-expression
)

// Attribute keys used by the core.
const (
	ValueAttr       = "Value"
	DescriptionAttr = "Description"
)

// IsList is a predicate: does tag denote a list?
func IsList(tag string) bool {
	return tag == ListTag
}
