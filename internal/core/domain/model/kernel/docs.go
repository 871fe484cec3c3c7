// Package kernel provides shared domain primitives for the furniture order service.
//
// The package includes:
//   - UUID: a value object for identifiers of orders, operations, columns and transition episodes
//   - Money: a non-negative monetary amount backed by github.com/shopspring/decimal
//
// Both types are immutable and reject their zero values on Validate.
package kernel
