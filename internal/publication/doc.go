// Package publication models one managed web publication: its
// identity, derived filesystem and URL paths, descriptor parameters,
// and the create/remove operations over its on-disk artifacts.
package publication
