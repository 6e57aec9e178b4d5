// Package mapping loads declarative mapper definitions from YAML, checks
// them, and compiles them into ready to use mappers.
//
// A mapping file is the data form of mapper declarations: every rule, hook,
// filter and delegate is named in the file and resolved against a Registry
// of Go functions.
//
// # Schema Overview
//
//	version: "1"
//	mappers:
//	  - name: Person
//	    rules:
//	      - from: /names/first
//	        to: /first_name
//	        filter: {from: trim, to: upcase}
//	  - name: Project
//	    rules:
//	      - from: /name
//	        to: /project_name
//	      - from: /author_hash
//	        to: /author
//	        using: Person
//	      - from: /status
//	        to: /state
//	        default: active
//	  - name: DetailedProject
//	    extends: Project
//	    imports: [Audit]
//	    hooks:
//	      after_normalize: [compact]
//	    rules:
//	      - from: /tagid
//	        to: /tag_id
//	        filter: to_i             # shorthand for {to: to_i}
//
// # Resolution
//
//   - extends: the parent's rules and hooks come first, then the mapper's own
//   - imports: rules (not hooks) of other mappers, appended after the
//     parent's rules and before the mapper's own
//   - using: resolved when the rule runs, so a mapper may delegate to itself
//     or to a mapper declared later in the file
//
// extends and imports must not form a cycle.
//
// # Filters
//
// A filter entry is a name or a list of names applied in order. Filters on
// "to" run when normalizing, filters on "from" when denormalizing.
package mapping
