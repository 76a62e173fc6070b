// Package templates renders the Apache publication block and the VRD
// descriptor from embedded or user-supplied template files.
package templates
