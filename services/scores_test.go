package services

import (
	"testing"

	appschema "github.com/ZAITAKUSANTEI/my-skin-app/models"
	"github.com/stretchr/testify/assert"
)

func TestLikelihoodValue(t *testing.T) {
	tests := []struct {
		name       string
		likelihood string
		want       float64
	}{
		{"unknown", "UNKNOWN", 0},
		{"very unlikely", "VERY_UNLIKELY", 20},
		{"unlikely", "UNLIKELY", 40},
		{"possible", "POSSIBLE", 60},
		{"likely", "LIKELY", 80},
		{"very likely", "VERY_LIKELY", 100},
		{"unrecognized", "SOMETHING_ELSE", -20},
		{"empty", "", -20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, likelihoodValue(tt.likelihood))
		})
	}
}

func TestFinalize(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  int
	}{
		{"clamps high", 150, 100},
		{"clamps low", -30, 0},
		{"rounds up", 55.5, 56},
		{"rounds down", 55.4, 55},
		{"boundary high", 100, 100},
		{"boundary low", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, finalize(tt.score))
		})
	}
}

func TestCalculateScores(t *testing.T) {
	t.Run("smoothness from joy and sorrow", func(t *testing.T) {
		face := &appschema.FaceAnnotation{
			JoyLikelihood:    "LIKELY",
			SorrowLikelihood: "UNKNOWN",
		}
		scores := CalculateScores(face)
		// 100 - (80+0)/2
		assert.Equal(t, 60, scores.Smoothness)
	})

	t.Run("firmness from tilt and surprise", func(t *testing.T) {
		face := &appschema.FaceAnnotation{
			TiltAngle:          10.0,
			SurpriseLikelihood: "UNLIKELY",
		}
		scores := CalculateScores(face)
		// tiltScore 90, surprise 40 -> (90 + 60) / 2
		assert.Equal(t, 75, scores.Firmness)
	})

	t.Run("negative tilt uses absolute value", func(t *testing.T) {
		face := &appschema.FaceAnnotation{
			TiltAngle:          -10.0,
			SurpriseLikelihood: "UNLIKELY",
		}
		scores := CalculateScores(face)
		assert.Equal(t, 75, scores.Firmness)
	})

	t.Run("dullness from under exposure", func(t *testing.T) {
		face := &appschema.FaceAnnotation{UnderExposedLikelihood: "POSSIBLE"}
		scores := CalculateScores(face)
		assert.Equal(t, 40, scores.Dullness)
	})

	t.Run("spots and pores share the blur signal", func(t *testing.T) {
		face := &appschema.FaceAnnotation{BlurredLikelihood: "LIKELY"}
		scores := CalculateScores(face)
		assert.Equal(t, 20, scores.Spots)
		assert.Equal(t, 20, scores.Pores)
	})

	t.Run("unrecognized likelihoods clamp to valid range", func(t *testing.T) {
		face := &appschema.FaceAnnotation{
			JoyLikelihood:          "bogus",
			SorrowLikelihood:       "bogus",
			SurpriseLikelihood:     "bogus",
			UnderExposedLikelihood: "bogus",
			BlurredLikelihood:      "bogus",
		}
		scores := CalculateScores(face)
		// each unrecognized value contributes -20 before the clamp
		assert.Equal(t, 100, scores.Dullness)
		assert.Equal(t, 100, scores.Spots)
		assert.Equal(t, 100, scores.Pores)
		assert.Equal(t, 100, scores.Smoothness)
		assert.Equal(t, 100, scores.Firmness)
	})

	t.Run("extreme tilt clamps to zero", func(t *testing.T) {
		face := &appschema.FaceAnnotation{
			TiltAngle:          400,
			SurpriseLikelihood: "VERY_LIKELY",
		}
		scores := CalculateScores(face)
		// (100-400 + 0) / 2 = -150, clamped after the combination
		assert.Equal(t, 0, scores.Firmness)
	})
}
