package check

// Checker is implemented by all check types.
// Each check validates one version-bearing source
// and returns a Result indicating success or failure.
//
// Implementations:
//   - manifestcheck.Check: validates the version field of a JSON manifest
//   - toolcheck.Check: validates the version reported by an installed tool
type Checker interface {
	Run() Result
}
