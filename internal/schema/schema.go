// Package schema tracks the version of the Nenyr grammar this parser
// implements, so host tooling can check a required schema range against the
// parser it is actually running before trusting the resulting AST.
package schema

import (
	"fmt"

	semver "github.com/Masterminds/semver/v3"
)

// Version is the grammar version this parser implements.
const Version = "1.4.0"

// CompatibleWith reports whether this parser's Version satisfies constraint,
// a semver range such as ">=1.2.0, <2.0.0". An invalid constraint string is
// reported as an error rather than treated as incompatible.
func CompatibleWith(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("invalid schema constraint %q: %w", constraint, err)
	}

	v, err := semver.NewVersion(Version)
	if err != nil {
		return false, fmt.Errorf("parser schema version %q is not valid semver: %w", Version, err)
	}

	return c.Check(v), nil
}
