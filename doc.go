// Package vpath provides an editable, morphable vector path model.
//
// # Overview
//
// vpath stores SVG-style path data (move, line, quadratic, cubic and close
// commands) as immutable values. Every command carries a stable ID that
// survives edits, so selection and hover state can follow a point while the
// path is split, converted, reversed or shifted.
//
// # Quick Start
//
//	import "github.com/gogpu/vpath"
//
//	p := vpath.MustParse("M 0 0 L 10 10 L 20 20")
//
//	// Split the first line in half and reverse the subpath
//	p2, err := p.Mutate().
//		SplitCommand(0, 1, 0.5).
//		ReverseSubPath(0).
//		Build()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(p2) // M 20 20 L 10 10 L 5 5 L 0 0
//
// # Edits
//
// A Path remembers, per original command, where it was split and which verb
// each piece is drawn with. Splits can therefore be undone, conversions
// reverted and transforms replaced without accumulating error. Subpath
// reversal, rotation of closed subpaths and reordering are kept as separate
// per-subpath state and composed when the path is built.
//
// # Morphing
//
// Two paths can be interpolated when they have the same structure. AutoFix
// and AutoFixAll align two paths with a Needleman-Wunsch alignment (package
// align), insert splits where the alignment has gaps and convert verbs so
// that IsMorphableWith holds.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increases counter-clockwise
package vpath

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
