// Package registry dispatches cosmology serialization on string format
// tokens. Writers and readers register under explicit tokens (aliases are
// separate registrations of one implementation); lookups for unknown tokens
// fail with a typed error listing the registered set.
package registry
