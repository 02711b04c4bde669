// Package clip clips and splits planar polygon loops against half-spaces and
// axis-aligned boxes.
//
// A loop is an ordered, cyclic sequence of coplanar vertices. A plane
// (A, B, C, D) keeps the half-space A·x + B·y + C·z + D >= 0. Results are
// written into caller-owned LoopBuffers that are reset and reused on every
// call, so a clipping pass over many polygons allocates only while the
// buffers are still growing.
//
// Geometric outcomes (an empty result, a loop entirely on one side) are
// reported through bool and Side values. Invalid input such as a degenerate
// plane or a missing buffer is reported as an error and never confused with
// an empty result.
//
// Nothing in this package is safe for concurrent use of the same buffers.
package clip
