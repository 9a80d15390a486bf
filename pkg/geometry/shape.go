package geometry

import (
	"fmt"

	"github.com/df07/glimmer/pkg/core"
)

// machineEpsilon is the float64 unit roundoff used by the parallel-ray tests
const machineEpsilon = 0x1p-52

// Hit contains information about a ray-primitive intersection in the
// primitive's own space
type Hit struct {
	T      float64   // Parameter t along the ray
	Point  core.Vec3 // Point of intersection
	Normal core.Vec3 // Unit outward surface normal, never flipped toward the ray
	UV     core.Vec2 // Surface parameterization at the hit
}

// Kind identifies which primitive a Geometry holds
type Kind int

const (
	KindSphere Kind = iota
	KindPlane
	KindMesh
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindPlane:
		return "plane"
	case KindMesh:
		return "mesh"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Geometry is a closed set of primitives dispatched on Kind. A Geometry is
// shared by pointer between scene objects and must not change once rendering starts.
type Geometry struct {
	kind   Kind
	sphere Sphere
	plane  Plane
	mesh   *Mesh
}

// NewSphere creates a sphere geometry. A non-positive radius panics.
func NewSphere(center core.Vec3, radius float64) *Geometry {
	if radius <= 0 {
		panic(fmt.Sprintf("geometry: sphere radius must be positive, got %v", radius))
	}
	return &Geometry{kind: KindSphere, sphere: Sphere{Center: center, Radius: radius}}
}

// NewPlane creates an infinite plane through point. The normal is normalized;
// a zero normal panics.
func NewPlane(point, normal core.Vec3) *Geometry {
	if normal.IsZero() {
		panic("geometry: plane normal must be non-zero")
	}
	return &Geometry{kind: KindPlane, plane: Plane{Point: point, Normal: normal.Normalize()}}
}

// NewMeshGeometry wraps a mesh. The mesh is referenced, not copied.
func NewMeshGeometry(mesh *Mesh) *Geometry {
	if mesh == nil {
		panic("geometry: nil mesh")
	}
	return &Geometry{kind: KindMesh, mesh: mesh}
}

// Kind returns which primitive this geometry holds
func (g *Geometry) Kind() Kind {
	return g.kind
}

// Sphere returns the sphere and true when Kind is KindSphere
func (g *Geometry) Sphere() (Sphere, bool) {
	return g.sphere, g.kind == KindSphere
}

// Plane returns the plane and true when Kind is KindPlane
func (g *Geometry) Plane() (Plane, bool) {
	return g.plane, g.kind == KindPlane
}

// Mesh returns the mesh, or nil unless Kind is KindMesh
func (g *Geometry) Mesh() *Mesh {
	return g.mesh
}

// Intersect tests the ray against the primitive within [ray.TMin, ray.TMax]
func (g *Geometry) Intersect(ray core.Ray) (Hit, bool) {
	switch g.kind {
	case KindSphere:
		return g.sphere.Intersect(ray)
	case KindPlane:
		return g.plane.Intersect(ray)
	case KindMesh:
		return g.mesh.Intersect(ray)
	}
	return Hit{}, false
}

// AABB returns the primitive's bounding box in its own space
func (g *Geometry) AABB() core.AABB {
	switch g.kind {
	case KindSphere:
		return g.sphere.AABB()
	case KindPlane:
		return g.plane.AABB()
	case KindMesh:
		return g.mesh.AABB()
	}
	return core.EmptyAABB()
}
