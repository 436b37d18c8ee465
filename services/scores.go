package services

import (
	"math"

	appschema "github.com/ZAITAKUSANTEI/my-skin-app/models"
)

// ordered likelihood scale used by the vision service
var likelihoodLevels = []string{
	"UNKNOWN",
	"VERY_UNLIKELY",
	"UNLIKELY",
	"POSSIBLE",
	"LIKELY",
	"VERY_LIKELY",
}

// likelihoodValue maps a likelihood string to its index on the scale
// times 20. An unrecognized value yields -20; the final clamp pulls it
// back to 0, so it ends up equivalent to UNKNOWN.
func likelihoodValue(likelihood string) float64 {
	index := -1
	for i, level := range likelihoodLevels {
		if level == likelihood {
			index = i
			break
		}
	}
	return float64(index * 20)
}

// finalize rounds to the nearest integer and clamps to [0,100]. This
// must run after the full combination, not on intermediate terms.
func finalize(score float64) int {
	rounded := int(math.Round(score))
	if rounded > 100 {
		return 100
	}
	if rounded < 0 {
		return 0
	}
	return rounded
}

// CalculateScores derives the five skin-quality scores from a single
// face annotation. Spots and pores share the blur signal.
func CalculateScores(face *appschema.FaceAnnotation) appschema.ScoreSet {
	joy := likelihoodValue(face.JoyLikelihood)
	sorrow := likelihoodValue(face.SorrowLikelihood)
	surprise := likelihoodValue(face.SurpriseLikelihood)
	underExposed := likelihoodValue(face.UnderExposedLikelihood)
	blurred := likelihoodValue(face.BlurredLikelihood)

	tiltScore := 100 - math.Abs(face.TiltAngle)
	blemish := finalize(100 - blurred)

	return appschema.ScoreSet{
		Dullness:   finalize(100 - underExposed),
		Smoothness: finalize(100 - (joy+sorrow)/2),
		Firmness:   finalize((tiltScore + (100 - surprise)) / 2),
		Spots:      blemish,
		Pores:      blemish,
	}
}
