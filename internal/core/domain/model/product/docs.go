// Package product provides the Product entity for the catalog: priced,
// categorized items with a non-negative stock counter and an active flag.
package product
