package services

import (
	"fmt"
	"strings"

	constants "github.com/ZAITAKUSANTEI/my-skin-app/const"
	appschema "github.com/ZAITAKUSANTEI/my-skin-app/models"
)

const promptPersona = "あなたは美容クリニックで10年以上の経験を持つベテランカウンセラーです。" +
	"肌診断の結果をもとに、お客様一人ひとりに寄り添った施術のご提案を行います。"

const promptInstructions = `【指示】
1. スコアが低い項目を中心に、診断結果をわかりやすく要約してください。
2. スコアが低いお悩みごとに、上記の施術メニュー一覧の中からのみ、ちょうど2つの施術を推薦してください。
3. 各施術は施術名・説明・価格の形式で記載し、価格には「円」を付けてください。
4. 温かみがありながらもプロフェッショナルな文体で書いてください。
5. 出力はHTML形式とし、診断タイトルは<h3>、施術ごとに<div>ブロックを作り、その中で施術名は<h5>、説明と価格は<p>を使ってください。
`

// SerializeCatalog renders the treatment catalog as comma-separated
// rows, one per line. The output is input-independent and identical in
// every prompt.
func SerializeCatalog() string {
	var b strings.Builder
	for _, t := range constants.TREATMENT_CATALOG {
		fmt.Fprintf(&b, "%s,%s,%s,%d\n", t.Category, t.Name, t.Description, t.Price)
	}
	return b.String()
}

// BuildPrompt assembles the report-generation prompt: persona, labeled
// scores, the raw facial attributes, the catalog and the instruction
// block. Pure template interpolation, no branching.
func BuildPrompt(scores appschema.ScoreSet, face *appschema.FaceAnnotation) string {
	var b strings.Builder

	b.WriteString(promptPersona)
	b.WriteString("\n\n")

	b.WriteString("【肌診断スコア（0〜100、数値が低いほど要ケア）】\n")
	fmt.Fprintf(&b, "くすみ: %d\n", scores.Dullness)
	fmt.Fprintf(&b, "なめらかさ: %d\n", scores.Smoothness)
	fmt.Fprintf(&b, "ハリ: %d\n", scores.Firmness)
	fmt.Fprintf(&b, "シミ: %d\n", scores.Spots)
	fmt.Fprintf(&b, "毛穴: %d\n", scores.Pores)
	b.WriteString("\n")

	b.WriteString("【解析された顔の特徴】\n")
	fmt.Fprintf(&b, "喜びの表情: %s\n", face.JoyLikelihood)
	fmt.Fprintf(&b, "悲しみの表情: %s\n", face.SorrowLikelihood)
	fmt.Fprintf(&b, "驚きの表情: %s\n", face.SurpriseLikelihood)
	fmt.Fprintf(&b, "露出不足: %s\n", face.UnderExposedLikelihood)
	fmt.Fprintf(&b, "ぼやけ: %s\n", face.BlurredLikelihood)
	fmt.Fprintf(&b, "顔の傾き: %.2f度\n", face.TiltAngle)
	b.WriteString("\n")

	b.WriteString("【施術メニュー一覧（カテゴリ,施術名,説明,価格）】\n")
	b.WriteString(SerializeCatalog())
	b.WriteString("\n")

	b.WriteString(promptInstructions)

	return b.String()
}
