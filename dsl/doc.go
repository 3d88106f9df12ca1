// Package dsl provides the concrete value kinds of govalues.
//
// Overview
//   - Kinds: StringKind, IntegerKind, NumberKind, BoolKind, ListKind and TimeKind
//     implement govalues.Kind (ParseBase/ValidateBase/SanitizeBase/FormatBase).
//   - Constructors: String()/Integer()/Number()/Bool()/List()/Time() bind a kind to a
//     govalues.Config and return a *govalues.BaseSchema.
//   - Registry: Build(name, cfg, options) creates a schema from a kind name and a
//     loosely typed options map (used by loader/ for definition files).
//
// Parsing is total: inputs that cannot be coerced become the kind's empty value
// ("", 0, false, empty list, zero time). Validation reports Issues with the codes of the
// root package. Format flags are shared bits; each kind honours the ones it
// understands and ignores the rest.
//
// Example
//
//	email, err := dsl.String(govalues.Config{
//	    govalues.KeyID:       "email",
//	    govalues.KeyRequired: true,
//	}, dsl.MaxLen(254), dsl.Pattern(`^[^@\s]+@[^@\s]+$`))
//	if err != nil {
//	    return err
//	}
//	v := govalues.NewValue("  Bob@Example.com ", email)
//	v.Sanitize()                 // "Bob@Example.com"
//	v.Format(dsl.FormatLower)    // "bob@example.com"
package dsl
