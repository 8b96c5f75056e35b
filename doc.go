// Package paramparser validates and cleans untyped records against a
// declarative, per-field rule table.
//
// A Spec maps each accepted field name to a Field, an ordered list of Tokens.
// Tokens are built with one constructor per rule:
//
//   - Required            – the field must be present (nil counts as absent)
//   - Depends(names...)   – when this field is present, the named fields must be too
//   - Pattern / Regexp    – a scalar value must match
//   - ArrayItems          – a sequence whose non-empty items match, with an optional exact length
//   - NestedRecords       – a sequence of records, each parsed against a sub-spec
//   - Transform(fn)       – a transformation applied after validation
//   - NoTrim              – suppress the implicit trailing trim
//
// Parse runs a fixed sequence of phases:
//
//  1. Required and dependency checks. Failures of every field are
//     collected and returned together as a KindMissing ValidateError.
//  2. Keys not declared in the Spec are dropped; undefined fields are filled
//     from the defaults record.
//  3. Format checks. Empty and absent values are skipped; failures are
//     collected into a KindIncorrectFormat (or KindOther for misconfigured
//     rules) ValidateError.
//  4. Transforms run in rule order, followed by trim unless NoTrim is set.
//     Sequence values are transformed element-wise.
//
// Within a phase nothing short-circuits; across phases the first failing
// phase stops the record.
//
// # Usage
//
//	spec := paramparser.Spec{
//	    "email": {paramparser.Required(), paramparser.Pattern(pattern.Email), paramparser.Transform(transform.ToLower)},
//	    "lang":  {paramparser.Regexp(`^(en|de)$`)},
//	    "tags":  {paramparser.RegexpItems(`^[a-z]+$`)},
//	}
//
//	out, err := paramparser.Parse(input, spec, paramparser.Record{"lang": "en"})
//	if ve, ok := paramparser.AsValidateError(err); ok {
//	    log.Println(ve.Kind, ve.Messages())
//	}
//
// # Errors
//
// Parse only ever returns *ValidateError. Errors returned by transforms and
// panics raised while parsing are wrapped as KindOther. ValidateError.Code is
// always 400 so transports can map it directly.
//
// The Spec passed to Parse is never modified, so one Spec can be shared by
// concurrent calls.
package paramparser
