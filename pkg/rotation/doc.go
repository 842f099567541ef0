// Package rotation enumerates the coordinate-plane rotations of N-dimensional
// space and composes them into rotation matrices.
//
// # Overview
//
// An N-dimensional rotation decomposes into independent rotations in 2D
// coordinate planes. For dimension d there are exactly d·(d−1)/2 such planes;
// [Planes] enumerates them in ascending lexicographic order of their axis
// index pairs, each with a stable human-readable name ("XY", "XW", "A6A7").
//
// Axis naming follows the convention of the visualizer: indices 0..2 are
// X, Y, Z; indices 3..5 are W, V, U; anything beyond is labeled A6, A7, ...
// Plane names concatenate the two axis names in index order, so names are
// unique and deterministic per dimension.
//
// [Groups] partitions the planes for UI presentation: a "3D Rotations" group
// holding every plane within the first three axes, and one group per higher
// axis collecting the planes that reach into that axis. Each group carries a
// color tag; the tag is a display aid, not a geometric property.
//
// # Composition
//
// [Compose] multiplies plane rotations into a single matrix in the order
// given. Entries naming a plane that does not fit the requested dimension are
// skipped, matching the forgiving behavior the animation loop needs when the
// dimension shrinks mid-session.
package rotation
