// Package apache owns the Apache config file that hosts the managed
// publication blocks. It finds, iterates, appends and deletes
// marker-delimited blocks and composes publication records with the
// store's path conventions.
//
// The store holds no cached state. Every operation re-reads the file,
// and mutations rewrite it wholesale, so concurrent invocations racing
// on the same file can lose updates. That read-modify-write model is an
// accepted property of a single-operator tool, not something this
// package guards against.
package apache
