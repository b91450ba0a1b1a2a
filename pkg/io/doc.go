// Package io reads gradient designs from JSON.
//
// A design file describes one gradient:
//
//	{
//	  "type": "radial",
//	  "angle": 90,
//	  "center": {"x": 30, "y": 70},
//	  "stops": [
//	    {"color": "#4f46e5", "position": 0},
//	    {"color": "#06b6d4", "position": 100}
//	  ],
//	  "nodes": [
//	    {"color": "#ec4899", "x": 20, "y": 80}
//	  ]
//	}
//
// Omitted "type", "angle" and "center" take the editor defaults (linear,
// 90 degrees, centered). Out-of-range numbers are clamped, missing stop and
// node IDs are generated, and the result is validated: a stop-based design
// needs at least one stop and a mesh design at least one node.
//
// Colors must be complete "#rrggbb" values; anything else fails with an
// INVALID_COLOR error.
package io
