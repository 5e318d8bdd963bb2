// Package domain defines the core business entities for svcdir.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ServiceRecord: A service-provider entry in the catalog
//   - FilterCriteria: The search text, category, city and sort mode in effect
//   - ActiveFilter: A single non-default criterion, as shown in filter chips
//   - Summary: Counts describing the derived list
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
