package output

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/vernum/pkg/check"
	"github.com/vertti/vernum/pkg/version"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, dim, reset = "", "", "", ""
	}
}

// PrintResult outputs a check result with colored status.
func PrintResult(r check.Result) {
	var indent string
	if r.OK() {
		fmt.Printf("%s[OK]%s %s\n", green, reset, r.Name)
		indent = "     "
	} else {
		fmt.Printf("%s[FAIL]%s %s\n", red, reset, r.Name)
		indent = "       "
	}
	for _, d := range r.Details {
		fmt.Printf("%s%s\n", indent, formatLabel(d))
	}
}

// PrintDiagnostic outputs a parse failure. For a version.ParseError the
// caret annotation, when present, is printed under the message so the
// failing byte is visible.
func PrintDiagnostic(err error) {
	var perr *version.ParseError
	if !errors.As(err, &perr) {
		fmt.Printf("%serror:%s %v\n", red, reset, err)
		return
	}

	fmt.Printf("%s%s%s\n", red, perr.Error(), reset)
	if a := perr.Annotation(); a != "" {
		fmt.Println(a)
	}
}

// formatLabel dims the "label:" prefix of a detail line, if it has one.
func formatLabel(detail string) string {
	label, rest, found := strings.Cut(detail, ": ")
	if !found || strings.Contains(label, " ") {
		return detail
	}
	return fmt.Sprintf("%s%s:%s %s", dim, label, reset, rest)
}
