package manifestcheck

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/tidwall/gjson"

	"github.com/vertti/vernum/pkg/check"
	"github.com/vertti/vernum/pkg/version"
)

// Check verifies that a JSON manifest carries a well-formed version field
// and optionally enforces bounds or a constraint expression on it.
type Check struct {
	File       string           // path to the manifest
	Key        string           // gjson path of the version field (default "version")
	Min        *version.Version // minimum version required (inclusive)
	Max        *version.Version // maximum version allowed (exclusive)
	Exact      *version.Version // exact version required
	Constraint string           // semver constraint expression, e.g. ">=1.2, <2.0"
	FS         FileSystem       // injected for testing
}

// Run executes the manifest check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("manifest: %s", c.File),
	}

	content, err := c.FS.ReadFile(c.File)
	if err != nil {
		return result.Failf("failed to read file: %v", err)
	}

	jsonStr := string(content)
	if !gjson.Valid(jsonStr) {
		return result.Fail("invalid JSON", fmt.Errorf("invalid JSON syntax"))
	}

	key := c.Key
	if key == "" {
		key = "version"
	}

	field := gjson.Get(jsonStr, key)
	if !field.Exists() {
		return result.Failf("key %q not found", key)
	}

	v, err := version.Parse(field.String())
	if err != nil {
		result.AddDetailf("key %s: %s", key, field.String())
		return result.FailErr(err)
	}

	result.AddDetailf("version: %s", v)

	if err := c.checkBounds(v, &result); err != nil {
		return result
	}
	if err := c.checkConstraint(v, &result); err != nil {
		return result
	}

	result.Status = check.StatusOK
	return result
}

func (c *Check) checkBounds(v version.Version, result *check.Result) error {
	// Check exact version
	if c.Exact != nil && v.Compare(*c.Exact) != 0 {
		err := fmt.Errorf("version %s does not match required %s", v, c.Exact)
		result.Fail(fmt.Sprintf("version %s != required %s", v, c.Exact), err)
		return err
	}

	// Check min version (inclusive: version >= min)
	if c.Min != nil && !v.GreaterThanOrEqual(*c.Min) {
		err := fmt.Errorf("version %s below minimum %s", v, c.Min)
		result.Fail(fmt.Sprintf("version %s < minimum %s", v, c.Min), err)
		return err
	}

	// Check max version (exclusive: version < max)
	if c.Max != nil && !v.LessThan(*c.Max) {
		err := fmt.Errorf("version %s at or above maximum %s", v, c.Max)
		result.Fail(fmt.Sprintf("version %s >= maximum %s", v, c.Max), err)
		return err
	}

	return nil
}

func (c *Check) checkConstraint(v version.Version, result *check.Result) error {
	if c.Constraint == "" {
		return nil
	}

	constraint, err := semver.NewConstraint(c.Constraint)
	if err != nil {
		result.Failf("invalid constraint %q: %v", c.Constraint, err)
		return err
	}

	if !constraint.Check(v.Full().Semver()) {
		err := fmt.Errorf("version %s does not satisfy constraint %q", v, c.Constraint)
		result.Fail(err.Error(), err)
		return err
	}

	result.AddDetailf("constraint: %s", c.Constraint)
	return nil
}
