package main

import (
	"fmt"

	"github.com/toyz/doppel/pkg/doppel"
)

func main() {
	engine, err := doppel.New()
	if err != nil {
		fmt.Printf("engine setup failed: %v\n", err)
		return
	}

	// Test marker pairing
	tests := []string{
		"// doppel::spy\nprotocol Pinger {\n    func ping()\n}\n",
		"// doppel::mock -Access=public\nprotocol Clock {\n    func now() -> Int\n}\n",
		"// doppel::factory\nstruct Draft {\n    var body: String\n}\n",
		"// doppel::factory\nprotocol Wrong {\n    func nope()\n}\n",
		"struct Unmarked {\n    var x: Int\n}\n",
	}

	fmt.Println("Testing marker pairing:")
	for i, test := range tests {
		result, err := engine.ProcessFile(fmt.Sprintf("test%d.swift", i), []byte(test))
		if err != nil {
			fmt.Printf("  error: %v\n", err)
			continue
		}

		if result.Skipped {
			fmt.Printf("  skipped: %s\n", result.SkipReason)
			continue
		}
		for _, artifact := range result.Artifacts {
			fmt.Printf("  generated %s (%d bytes)\n", artifact.FileName, len(artifact.Source))
		}
		for _, note := range result.Notes {
			fmt.Printf("  note: %s\n", note)
		}
	}

	// Test malformed markers
	fmt.Println("\nTesting malformed markers:")
	invalidTests := []string{
		"// doppel::spyy\nprotocol Typo {\n}\n",              // unknown kind
		"// doppel::spy -Access=open\nprotocol Open {\n}\n", // bad flag value
	}

	for _, test := range invalidTests {
		_, err := engine.ProcessFile("invalid.swift", []byte(test))
		if err != nil {
			fmt.Printf("  ✓ correctly rejected: %v\n", err)
		} else {
			fmt.Printf("  ✗ should have been rejected\n")
		}
	}
}
