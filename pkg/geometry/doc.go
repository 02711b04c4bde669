// Package geometry provides the vector algebra and tolerance helpers shared by
// the clipping engine and the mesh tooling. Vec3 is generic over float32 and
// float64; Vector3 is the float64 instantiation used for meshes.
package geometry
