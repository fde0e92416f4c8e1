// Package file provides a TOML-backed configuration store.
//
// Configuration lives in ~/.ragprep/config.toml by default. Nested TOML
// tables are flattened into dot-notation keys, so "[llm] api_key" is
// addressed as "llm.api_key".
package file
