package toolcheck

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/vertti/vernum/pkg/check"
	"github.com/vertti/vernum/pkg/version"
)

// DefaultTimeout is the timeout for the version command when none is set.
const DefaultTimeout = 30 * time.Second

// versionPattern matches the first version-number-shaped token in command
// output. The candidate still has to pass the strict parser, so a match
// here is not acceptance.
var versionPattern = regexp.MustCompile(`[0-9]+(?:\.[0-9]+){1,2}`)

// Check verifies that a tool exists on PATH and reports an acceptable
// version number.
type Check struct {
	Name        string           // tool name to check
	VersionArgs []string         // args to get version (default: --version)
	Min         *version.Version // minimum version required (inclusive)
	Max         *version.Version // maximum version allowed (exclusive)
	Exact       *version.Version // exact version required
	Timeout     time.Duration    // timeout for version command (default: 30s)
	Runner      Runner           // injected for testing
}

// Run executes the tool check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("tool: %s", c.Name),
	}

	path, err := c.Runner.LookPath(c.Name)
	if err != nil {
		return result.Failf("not found in PATH: %v", err)
	}

	result.AddDetailf("path: %s", path)

	args := c.VersionArgs
	if len(args) == 0 {
		args = []string{"--version"}
	}

	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	stdout, stderr, err := c.Runner.RunCommandContext(ctx, c.Name, args...)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return result.Failf("version command timed out after %s", timeout)
		}
		result.AddDetailf("version command failed: %v", err)
		if stderr != "" {
			result.AddDetailf("stderr: %s", strings.TrimSpace(stderr))
		}
		result.Status = check.StatusFail
		result.Err = err
		return result
	}

	output := stdout
	if output == "" {
		output = stderr
	}

	v, err := extractVersion(output)
	if err != nil {
		result.AddDetailf("output: %s", strings.TrimSpace(output))
		return result.FailErr(err)
	}

	result.AddDetailf("version: %s", v)

	if err := c.checkBounds(v, &result); err != nil {
		return result
	}

	result.Status = check.StatusOK
	return result
}

// extractVersion pulls the first version-shaped token out of the output
// and runs it through the strict parser. Tools prefix their version with
// arbitrary text ("git version 2.39.5"), so the candidate is located by
// pattern first.
func extractVersion(output string) (version.Version, error) {
	candidate := versionPattern.FindString(output)
	if candidate == "" {
		return version.Version{}, fmt.Errorf("no version number found in output %q", strings.TrimSpace(output))
	}
	return version.Parse(candidate)
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
