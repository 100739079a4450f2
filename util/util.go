package util

import "fmt"

// VersionType is the semantic version of the testspec binary.
type VersionType struct {
	Major    uint
	Minor    uint
	Revision uint
}

// Version of the tool, reported by `testspec --version`.
var Version = VersionType{
	Major:    1,
	Minor:    2,
	Revision: 0,
}

func (v VersionType) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Revision)
}
