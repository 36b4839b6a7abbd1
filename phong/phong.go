// Package phong describes the fixed lit scene: one green sphere, one point
// light and a camera at the origin looking down -Z.
package phong

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Material and light parameters.
var (
	MatKa           = mgl32.Vec3{0.0, 1.0, 0.0}
	MatKd           = mgl32.Vec3{0.0, 0.5, 0.0}
	MatKs           = mgl32.Vec3{0.5, 0.5, 0.5}
	MatShininess    = float32(32.0)
	LightIa         = float32(0.2)
	LightPosWorld   = mgl32.Vec3{-4.0, 4.0, -3.0}
	LightIl         = mgl32.Vec3{1.0, 1.0, 1.0}
	EyePosWorld     = mgl32.Vec3{0.0, 0.0, 0.0}
	Gamma           = float32(2.2)
	ModelPosition   = mgl32.Vec3{0.0, 0.0, -7.0}
	ModelScale      = float32(2.0)
	ViewCenter      = mgl32.Vec3{0.0, 0.0, -1.0}
	ViewUp          = mgl32.Vec3{0.0, 1.0, 0.0}
	NearPlane       = float32(0.1)
	FarPlane        = float32(1000.0)
	FrustumHalfSize = float32(0.1)
)

// UniformSetter uploads named shader inputs.
type UniformSetter interface {
	SetMat4(name string, value mgl32.Mat4)
	SetMat3(name string, value mgl32.Mat3)
	SetVec3(name string, value mgl32.Vec3)
	SetFloat(name string, value float32)
}

// Uniforms holds every value the Phong shaders read.
type Uniforms struct {
	Model      mgl32.Mat4
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Normal     mgl32.Mat3

	EyePos   mgl32.Vec3
	LightPos mgl32.Vec3
	LightIl  mgl32.Vec3
	LightIa  float32

	Ka        mgl32.Vec3
	Kd        mgl32.Vec3
	Ks        mgl32.Vec3
	Shininess float32

	Gamma float32
}

// Default returns the reference scene.
func Default() Uniforms {
	model := mgl32.Translate3D(ModelPosition.X(), ModelPosition.Y(), ModelPosition.Z()).
		Mul4(mgl32.Scale3D(ModelScale, ModelScale, ModelScale))

	return Uniforms{
		Model:      model,
		View:       mgl32.LookAtV(EyePosWorld, ViewCenter, ViewUp),
		Projection: mgl32.Frustum(-FrustumHalfSize, FrustumHalfSize, -FrustumHalfSize, FrustumHalfSize, NearPlane, FarPlane),
		Normal:     NormalMatrix(model),
		EyePos:     EyePosWorld,
		LightPos:   LightPosWorld,
		LightIl:    LightIl,
		LightIa:    LightIa,
		Ka:         MatKa,
		Kd:         MatKd,
		Ks:         MatKs,
		Shininess:  MatShininess,
		Gamma:      Gamma,
	}
}

// NormalMatrix returns the inverse transpose of the model's upper 3x3, which
// keeps normals perpendicular under non-uniform scale.
func NormalMatrix(model mgl32.Mat4) mgl32.Mat3 {
	return model.Mat3().Inv().Transpose()
}

// Apply uploads all values under the names the shaders declare.
func (u Uniforms) Apply(s UniformSetter) {
	s.SetMat4("modelMatrix", u.Model)
	s.SetMat4("viewMatrix", u.View)
	s.SetMat4("projectionMatrix", u.Projection)
	s.SetMat3("normalMatrix", u.Normal)

	s.SetVec3("eyePosWorld", u.EyePos)
	s.SetVec3("lightPosWorld", u.LightPos)
	s.SetVec3("lightIl", u.LightIl)
	s.SetFloat("lightIa", u.LightIa)

	s.SetVec3("matKa", u.Ka)
	s.SetVec3("matKd", u.Kd)
	s.SetVec3("matKs", u.Ks)
	s.SetFloat("matShininess", u.Shininess)

	s.SetFloat("gamma", u.Gamma)
}
