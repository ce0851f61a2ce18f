// Package harness runs conformance scenarios against the attribute classifier.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	cases:
//	  - input: stroke-width
//	    expect: stroke-width
//	  - input: Fill
//	    expect: ""            # unrecognized
//	documents:
//	  - documents/sample.svg  # relative to the scenario file
//	assertions:
//	  - type: attribute_count
//	    name: width
//	    count: 2
//
// Every case is classified with attribute.Lookup and compared with expect.
// Documents are scanned, merged into one report and written to an in-memory
// census store, which the assertions query.
//
// # Assertion Types
//
//   - attribute_count: the merged report holds name exactly count times
//   - recognized_count: count attributes classified to a known kind
//   - unrecognized_contains: name was seen and not recognized
//
// # Deterministic Testing
//
// Trace seq values and census run ids come from testutil.Sequence, so the
// same scenario always produces byte-identical golden output.
package harness
