package services

import (
	"strings"
	"testing"

	constants "github.com/ZAITAKUSANTEI/my-skin-app/const"
	appschema "github.com/ZAITAKUSANTEI/my-skin-app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeCatalog(t *testing.T) {
	serialized := SerializeCatalog()
	lines := strings.Split(strings.TrimRight(serialized, "\n"), "\n")

	require.Len(t, lines, len(constants.TREATMENT_CATALOG))

	categories := map[string]bool{}
	for i, line := range lines {
		fields := strings.SplitN(line, ",", 4)
		require.Len(t, fields, 4, "row %d should have four fields", i)
		categories[fields[0]] = true
	}
	assert.Len(t, categories, 7)
}

func TestBuildPrompt(t *testing.T) {
	face := &appschema.FaceAnnotation{
		TiltAngle:              12.341,
		JoyLikelihood:          "LIKELY",
		SorrowLikelihood:       "UNKNOWN",
		SurpriseLikelihood:     "UNLIKELY",
		UnderExposedLikelihood: "POSSIBLE",
		BlurredLikelihood:      "VERY_UNLIKELY",
	}
	scores := CalculateScores(face)
	prompt := BuildPrompt(scores, face)

	t.Run("contains persona and instruction block", func(t *testing.T) {
		assert.Contains(t, prompt, promptPersona)
		assert.Contains(t, prompt, promptInstructions)
	})

	t.Run("contains labeled scores", func(t *testing.T) {
		assert.Contains(t, prompt, "くすみ: 40")
		assert.Contains(t, prompt, "なめらかさ: 60")
		assert.Contains(t, prompt, "シミ: 80")
		assert.Contains(t, prompt, "毛穴: 80")
	})

	t.Run("formats tilt angle with two decimals", func(t *testing.T) {
		assert.Contains(t, prompt, "顔の傾き: 12.34度")
	})

	t.Run("contains raw likelihoods", func(t *testing.T) {
		assert.Contains(t, prompt, "喜びの表情: LIKELY")
		assert.Contains(t, prompt, "ぼやけ: VERY_UNLIKELY")
	})

	t.Run("catalog text is identical regardless of input", func(t *testing.T) {
		other := &appschema.FaceAnnotation{
			TiltAngle:              -80,
			JoyLikelihood:          "VERY_LIKELY",
			SorrowLikelihood:       "VERY_LIKELY",
			SurpriseLikelihood:     "VERY_LIKELY",
			UnderExposedLikelihood: "VERY_LIKELY",
			BlurredLikelihood:      "VERY_LIKELY",
		}
		otherPrompt := BuildPrompt(CalculateScores(other), other)

		catalog := SerializeCatalog()
		assert.Contains(t, prompt, catalog)
		assert.Contains(t, otherPrompt, catalog)
	})
}
