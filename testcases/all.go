package testcases

// All contains all test cases, grouped by category.
var All = map[string][]TestCase{
	"basic":   basicCases,
	"layout":  layoutCases,
	"text":    textCases,
	"shape":   shapeCases,
	"raster":  rasterCases,
	"failure": failureCases,
}

// Get returns the test case with the given category and name.
func Get(category, name string) (TestCase, bool) {
	for _, tc := range All[category] {
		if tc.Name == name {
			return tc, true
		}
	}
	return TestCase{}, false
}
