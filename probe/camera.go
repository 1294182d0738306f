// Package probe spawns randomly-placed debug markers inside a camera-relative
// spherical shell. It exists to eyeball depth scaling and occlusion behavior:
// spawn a batch, look at it, clear it, repeat.
package probe

import "github.com/go-gl/mathgl/mgl64"

// Camera is the explicit viewpoint passed into sampling and spawning.
// There is no ambient "main camera" lookup; callers own the reference.
type Camera struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

// NewCamera returns a camera at the given position looking down +Z.
func NewCamera(position mgl64.Vec3) *Camera {
	return &Camera{
		Position:    position,
		Orientation: mgl64.QuatIdent(),
	}
}

// Forward returns the camera's forward axis in world space.
func (c *Camera) Forward() mgl64.Vec3 {
	return c.Orientation.Rotate(mgl64.Vec3{0, 0, 1})
}

// Yaw rotates the camera around the world up axis by the given angle in radians.
func (c *Camera) Yaw(angle float64) {
	rot := mgl64.QuatRotate(angle, mgl64.Vec3{0, 1, 0})
	c.Orientation = rot.Mul(c.Orientation).Normalize()
}
