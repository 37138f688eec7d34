package vgf

import "github.com/pborman/uuid"

// BuildID stamps a compiled Grammar with a unique identifier, recorded in
// the compile command's JSON output header so a consumer can tell two
// compiled artifacts apart even when their rule text is identical.
func BuildID() string {
	return uuid.New()
}
