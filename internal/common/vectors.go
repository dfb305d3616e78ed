package common

import "math"

// CosineSimilarity calculates the cosine similarity between two vectors
// and returns the score along with a boolean indicating if the calculation was successful.
func CosineSimilarity(a, b []float64) (float64, bool) {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0, false
	}

	var dotProduct float64
	var normA float64
	var normB float64

	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0, false
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB)), true
}

// NormalizeVector scales the vector to unit L2 norm in place. A zero vector is
// left untouched.
func NormalizeVector(v []float64) {
	var norm float64
	for _, x := range v {
		norm += x * x
	}
	if norm == 0 {
		return
	}
	norm = math.Sqrt(norm)
	for i := range v {
		v[i] /= norm
	}
}

// BlendVectors returns weightA*a + (1-weightA)*b. Both vectors must have the
// same length; the boolean reports whether the blend was possible.
func BlendVectors(a, b []float64, weightA float64) ([]float64, bool) {
	if len(a) == 0 || len(a) != len(b) {
		return nil, false
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i]*weightA + b[i]*(1-weightA)
	}
	return out, true
}

// ToFloat32 converts a float64 slice to float32, truncating precision.
func ToFloat32(v []float64) []float32 {
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(x)
	}
	return out
}
