package dsl

import govalues "github.com/reoring/govalues"

// Format flags understood by the kinds of this package.
const (
	FormatUpper      govalues.Flags = 1 << iota // String: upper-case.
	FormatLower                                 // String: lower-case.
	FormatEscapeHTML                            // String: escape HTML special characters.
	FormatThousands                             // Integer: group digits with ",".
	FormatFixed                                 // Number: fixed-point with the kind's precision.
	FormatYesNo                                 // Bool: "yes"/"no".
	FormatJoined                                // List: join items with ", ".
	FormatDate                                  // Time: calendar date only (2006-01-02).
)
