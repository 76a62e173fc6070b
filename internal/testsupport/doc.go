// Package testsupport provides tempdir-backed config and store
// builders shared by the package test suites.
package testsupport
