package dsl

import (
	"fmt"

	govalues "github.com/reoring/govalues"
	"github.com/reoring/govalues/i18n"
)

// issue builds a root-path Issue; the schema rebases it onto the value id.
func issue(code string, params map[string]any) govalues.Issue {
	var data map[string]string
	if len(params) > 0 {
		data = make(map[string]string, len(params))
		for k, v := range params {
			data[k] = fmt.Sprint(v)
		}
	}
	return govalues.Issue{Path: "/", Code: code, Message: i18n.T(code, data), Params: params}
}

func invalidType(want string, got any) govalues.Issues {
	return govalues.Issues{issue(govalues.CodeInvalidType, map[string]any{"expected": want, "got": fmt.Sprintf("%T", got)})}
}

// errOrNil converts an empty Issues slice to a nil error.
func errOrNil(iss govalues.Issues) error {
	if len(iss) == 0 {
		return nil
	}
	return iss
}
