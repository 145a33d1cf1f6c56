package conformance

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// TestPath is the suite directory, relative to the conformance package
const TestPath = "testdata"

// LoadedTest represents a test case with its source file path
type LoadedTest struct {
	File  string
	Suite TestSuite
	Test  TestCase
}

// LoadAllTests loads every test case from the suite directory
func LoadAllTests() ([]LoadedTest, error) {
	entries, err := os.ReadDir(TestPath)
	if err != nil {
		return nil, fmt.Errorf("could not read suite directory %s: %w", TestPath, err)
	}

	var loaded []LoadedTest
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		path := filepath.Join(TestPath, entry.Name())
		suite, err := LoadSuite(path)
		if err != nil {
			return nil, err
		}
		for _, tc := range suite.Tests {
			loaded = append(loaded, LoadedTest{File: path, Suite: *suite, Test: tc})
		}
	}
	return loaded, nil
}

// LoadSuite parses a single YAML suite file
func LoadSuite(path string) (*TestSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var suite TestSuite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &suite, nil
}
