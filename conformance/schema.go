package conformance

// TestSuite represents a complete YAML test file
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Tests       []TestCase `yaml:"tests"`
}

// TestCase represents a single test within a suite
// Exactly one of Output or Error is expected: Output is the full stdout of
// the program, Error is an E_* kind name the evaluation must fail with
type TestCase struct {
	Name   string `yaml:"name"`
	Skip   string `yaml:"skip,omitempty"` // non-empty = skip with reason
	Source string `yaml:"source"`
	Output string `yaml:"output,omitempty"`
	Error  string `yaml:"error,omitempty"`
}
