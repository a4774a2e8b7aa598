// Package geometry provide basic geometric value types used across the
// geometry compiler. All lengths are millimeters, all angles degrees unless
// stated otherwise.
package geometry

import "math"

// Point represent a position in 3D space.
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
	Z float64 `json:"z" bson:"z"`
}

// Vec3D represent a size or displacement in 3D space.
type Vec3D struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
	Z float64 `json:"z" bson:"z"`
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// PolarToCartesian converts an in-plane polar position to Cartesian
// coordinates, rounded to 0.01 mm. The minus sign on y is the in-plane
// handedness of the HADES template frame and must not be changed.
func PolarToCartesian(phiInDeg, rInMM float64) (x, y float64) {
	phi := DegToRad(phiInDeg)
	x = Round2(rInMM * math.Cos(phi))
	y = Round2(-rInMM * math.Sin(phi))
	return x, y
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100.0) / 100.0
}
