// Package types defines the link record, the ordered link collection, the
// durable key-value store interface, backend configuration, and the
// standard error values shared by the dailies packages.
package types
