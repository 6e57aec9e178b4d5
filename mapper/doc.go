// Package mapper implements a bidirectional structural mapper between two
// tree-shaped documents (nested maps and lists with scalar leaves).
//
// A Mapper is an ordered table of Rules. Each Rule pairs two Paths: on
// Normalize the value found at the "from" path of the input is written to
// the "to" path of the output, on Denormalize the two paths swap roles.
//
// # Path Syntax
//
// Paths are slash separated keys with an optional array index on any key:
//
//	/name
//	/tag_attributes/type
//	/arrays/names[1]
//	bingo/biscuit          (leading slash is optional)
//
// # Missing values
//
// A key that is absent, or present with a nil value, is missing. A missing
// value is never written to the output unless the Rule has a Default. A
// present false (or any other zero value) is a value and is copied.
//
// # Writing
//
// Intermediate containers are created on demand: a list when the next
// segment carries an index, a map otherwise. A destination that already
// holds a non-nil value is never overwritten, so the first Rule writing a
// path wins.
//
// # Building mappers
//
//	person := mapper.NewBuilder("person").
//		Map("/names/first", "/first_name").
//		MustBuild()
//
//	project := mapper.NewBuilder("project").
//		Map("/name", "/project_name").
//		Map("/author_hash", "/author", mapper.Using(person)).
//		MustBuild()
//
//	out, err := project.Normalize(doc)
//
// A built Mapper is immutable and safe for concurrent use. Extend seeds a
// new Builder with a copy of a parent's rules and hooks, so declarations on
// the child never affect the parent or its siblings.
package mapper
