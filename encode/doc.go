// Package encode serializes IR nodes to text.
//
// # Usage
//
//	// Canonical 2-space indented JSON
//	node := ir.Object().
//	    Set("name", ir.FromString("alice")).
//	    Set("age", ir.FromInt(30))
//	err := encode.Encode(node, os.Stdout)
//
//	// Encode with options
//	err := encode.Encode(node, w,
//	    encode.EncodeFormat(format.YAMLFormat),
//	    encode.EncodeColors(encode.NewColors()))
//
// # Related Packages
//
//   - github.com/doclift/doclift/ir - IR representation
//   - github.com/doclift/doclift/extract - Walk view snapshots into IR
package encode
