package physics

import "math"

// Minimal vector type for positions and offsets reported by the simulation.
// Geometry beyond distances lives in the simulation itself.

type Vec3 struct{ X, Y, Z float64 }

var Zero = Vec3{}

func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

func (v Vec3) Length() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

func (v Vec3) IsZero() bool { return v == Zero }

// DistanceTo computes Euclidean distance between two points.
func (v Vec3) DistanceTo(o Vec3) float64 { return o.Sub(v).Length() }

// Distance2D ignores height.
func (v Vec3) Distance2D(o Vec3) float64 { return math.Hypot(o.X-v.X, o.Y-v.Y) }
