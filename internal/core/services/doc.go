// Package services implements the driving port interfaces.
// Services contain the core pipeline logic and orchestrate
// calls to driven ports (adapters).
//
// # Import Rules
//
// Services may import domain, ports, and the pipeline component
// packages (chunkers, formatters, metadata, readers, enrich). They
// never import driving adapters.
package services
