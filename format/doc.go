// Package format names the output formats extracted documents can be
// serialized to.
//
// # Related Packages
//
//   - github.com/doclift/doclift/encode - Encode IR to text
package format
