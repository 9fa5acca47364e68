package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	minPitch = -math.Pi/2 + 0.01
	maxPitch = math.Pi/2 - 0.01
)

// FreeCam is a fly-through camera: no gravity, WASD moves along the view
// direction and its horizontal right vector.
type FreeCam struct {
	Position  rl.Vector3
	Yaw       float32 // radians, 0 looks down -Z
	Pitch     float32 // radians
	FOV       float32
	MoveSpeed float32 // units per second
	LookSpeed float32 // radians per pixel of mouse movement
}

func New(pos rl.Vector3, fov, moveSpeed, lookSpeed float32) *FreeCam {
	return &FreeCam{
		Position:  pos,
		FOV:       fov,
		MoveSpeed: moveSpeed,
		LookSpeed: lookSpeed,
	}
}

// Update polls mouse and keyboard and moves the camera.
func (c *FreeCam) Update(deltaTime float32) {
	mouseDelta := rl.GetMouseDelta()
	c.Rotate(-mouseDelta.X*c.LookSpeed, -mouseDelta.Y*c.LookSpeed)

	var forward, strafe float32
	if rl.IsKeyDown(rl.KeyW) {
		forward++
	}
	if rl.IsKeyDown(rl.KeyS) {
		forward--
	}
	if rl.IsKeyDown(rl.KeyD) {
		strafe++
	}
	if rl.IsKeyDown(rl.KeyA) {
		strafe--
	}
	c.Move(forward, strafe, deltaTime)
}

// Rotate turns the camera, clamping pitch just short of straight up/down.
func (c *FreeCam) Rotate(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch += dPitch
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < minPitch {
		c.Pitch = minPitch
	}
}

// Move flies forward along the view direction and strafes sideways.
func (c *FreeCam) Move(forward, strafe, deltaTime float32) {
	dir := c.Direction()
	right := dir.Cross(mgl32.Vec3{0, 1, 0})
	if right.Len() > 0 {
		right = right.Normalize()
	}

	step := dir.Mul(forward).Add(right.Mul(strafe))
	if step.Len() == 0 {
		return
	}
	step = step.Normalize().Mul(c.MoveSpeed * deltaTime)

	c.Position.X += step.X()
	c.Position.Y += step.Y()
	c.Position.Z += step.Z()
}

// Direction is the unit view vector.
func (c *FreeCam) Direction() mgl32.Vec3 {
	yaw := float64(c.Yaw)
	pitch := float64(c.Pitch)
	return mgl32.Vec3{
		float32(-math.Cos(pitch) * math.Sin(yaw)),
		float32(math.Sin(pitch)),
		float32(-math.Cos(pitch) * math.Cos(yaw)),
	}
}

// Ray returns the view ray used for block targeting.
func (c *FreeCam) Ray() (origin, direction mgl32.Vec3) {
	return mgl32.Vec3{c.Position.X, c.Position.Y, c.Position.Z}, c.Direction()
}

func (c *FreeCam) GetRaylibCamera() rl.Camera3D {
	dir := c.Direction()
	target := rl.Vector3{
		X: c.Position.X + dir.X(),
		Y: c.Position.Y + dir.Y(),
		Z: c.Position.Z + dir.Z(),
	}

	return rl.Camera3D{
		Position:   c.Position,
		Target:     target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: rl.CameraPerspective,
	}
}
