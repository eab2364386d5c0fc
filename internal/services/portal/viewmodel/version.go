package viewmodel

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// tableVersion tracks revisions of the badge tables. Minor bumps add
// statuses or domains; major bumps change an existing color.
const tableVersion = "1.1.0"

// TableVersion returns the current badge table revision.
func TableVersion() *semver.Version {
	return semver.MustParse(tableVersion)
}

// CheckTableVersion reports an error when the badge tables do not satisfy
// constraint (for example "^1.0"). An empty constraint always passes.
func CheckTableVersion(constraint string) error {
	constraint = strings.TrimSpace(constraint)
	if constraint == "" {
		return nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parse badge table constraint %q: %w", constraint, err)
	}
	if !c.Check(TableVersion()) {
		return fmt.Errorf("badge tables %s do not satisfy %q", tableVersion, constraint)
	}
	return nil
}
