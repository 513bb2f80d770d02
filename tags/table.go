package tags

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// --- Tags -------------------------------------------------------

// Tag is the type to be stored into tag tables. A tag names a category of
// expression nodes, e.g. "Math.Arithmetic.Addition".
//
type Tag struct {
	name  string
	id    int
	UData interface{} // user data
}

// NewTag creates a new tag without a serial ID.
// Tags which are defined by a table will receive an ID.
func NewTag(nm string) *Tag {
	return &Tag{name: nm}
}

// String is a debug Stringer for tags.
func (t *Tag) String() string {
	return fmt.Sprintf("<tag '%s':%d>", t.name, t.id)
}

// Name gets the tag's name.
func (t *Tag) Name() string {
	return t.name
}

// ID gets the tag's serial number. Serials start at 1, tags not stored
// into a table have an ID of 0.
func (t *Tag) ID() int {
	return t.id
}

// === Tag Tables ============================================================

// Table is a table to store tags (map-like semantics).
type Table struct {
	table  map[string]*Tag
	serial int
}

// NewTable creates an empty tag table.
//
func NewTable() *Table {
	return &Table{
		table: make(map[string]*Tag),
	}
}

// ResolveTag checks for a tag in the table.
// Returns a tag or nil.
//
func (t *Table) ResolveTag(tagname string) *Tag {
	return t.table[tagname]
}

// ResolveOrDefineTag finds
// a tag in the table, inserts a new one if not found.
// Returns the tag and a flag, signalling wether the tag
// has already been present.
//
func (t *Table) ResolveOrDefineTag(tagname string) (*Tag, bool) {
	if len(tagname) == 0 {
		return nil, false
	}
	found := true
	tag := t.ResolveTag(tagname)
	if tag == nil { // if not already there, insert it
		tag, _ = t.DefineTag(tagname)
		found = false
	}
	return tag, found
}

// DefineTag creates a new tag to store into the table.
// The tag's name may not be empty.
// Overwrites an existing tag with this name, if any.
// Returns the new tag and the previously stored tag (or nil).
//
func (t *Table) DefineTag(tagname string) (*Tag, *Tag) {
	if len(tagname) == 0 {
		return nil, nil
	}
	tag := NewTag(tagname)
	old := t.InsertTag(tag)
	return tag, old
}

// InsertTag inserts a pre-created tag and assigns the next serial ID to it.
// Returns the tag previously stored under the same name, if any.
func (t *Table) InsertTag(tag *Tag) *Tag {
	old := t.ResolveTag(tag.name)
	t.serial++
	tag.id = t.serial
	t.table[tag.name] = tag
	tracer().Debugf("defined tag %v", tag)
	return old
}

// Size counts the tags in a table.
func (t *Table) Size() int {
	return len(t.table)
}

// Each iterates over each tag in the table, executing a mapper function.
// Iteration order is unspecified.
func (t *Table) Each(mapper func(string, *Tag)) {
	for k, v := range t.table {
		mapper(k, v)
	}
}

// Names returns the names of all tags in the table, in lexical order.
func (t *Table) Names() []string {
	set := treeset.NewWith(utils.StringComparator)
	for k := range t.table {
		set.Add(k)
	}
	names := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		names = append(names, v.(string))
	}
	return names
}
