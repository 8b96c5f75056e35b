// Package specfile loads declarative rule tables for paramparser from YAML,
// JSON or TOML documents.
//
// A document has a "fields" mapping from field name to rule list and an
// optional "defaults" mapping:
//
//	fields:
//	  email: [required, {match: email}, {transform: email}]
//	  password: [required, notrim, {depends: [email]}]
//	  tags:
//	    - items: {pattern: "^[a-z]+$", length: 3}
//	  users:
//	    - records:
//	        fields:
//	          name: [required]
//	        defaults:
//	          role: member
//	defaults:
//	  lang: en
//
// Rules are "required", "notrim", {pattern: <regexp>}, {match: <matcher
// name>}, {depends: <names>}, {items: {pattern|match, length}},
// {records: <document>} and {transform: <name or names>}. Matcher names
// come from package pattern, transform names from package transform.
//
// Everything is resolved at load time: unknown rules, names and invalid
// regular expressions are load errors, never validation failures.
//
// Field order is preserved for the top level of YAML and JSON documents;
// TOML documents and nested records list fields by name.
//
// LoadDir builds a Registry from a directory, naming each spec after its
// file. Registry.Lookup plugs into handler.Named.
package specfile
