// Package profile loads flattening profiles: YAML documents selecting the
// inclusion toggles, element classification, depth limit and time layout
// of a configuration.
//
//	version: "1"
//	include:
//	  final: true
//	  transient: false
//	  static: false
//	  unexported: false
//	elements: declared     # declared | runtime
//	max_depth: 32
//	time_layout: "02.01.2006"
//
// Unknown keys and values are rejected with the closest known name.
package profile
