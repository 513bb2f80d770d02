/*
Package formulae is a term rewriting engine for symbolic expressions.

Domain modules register rewrite rules (reducers) for syntactic tags of
expression nodes. The engine applies matching rules to every node of an
expression tree until no rule fires any more, resulting in a normal form.
Package structure is as follows:

■ tags: Package tags implements an interning table for tag names.

■ expr: Package expr implements the homogenous expression tree, including
operations for in-place restructuring.

■ reduction: Package reduction implements the rule registry, reduction
sessions and the normalization algorithm.

■ canonical: Package canonical provides helpers for rule bodies, like
indexing of children, validation of options and detection of matrices.

The base package contains tag names which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package formulae
