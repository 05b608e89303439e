// Package user provides the User entity for the directory that orders
// reference. Users carry contact data and an active flag; email addresses
// are unique across the directory.
package user
