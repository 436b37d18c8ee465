package appschema

// ScoreSet holds the five skin-quality scores, each clamped to [0,100].
type ScoreSet struct {
	Dullness   int `json:"dullness"`
	Smoothness int `json:"smoothness"`
	Firmness   int `json:"firmness"`
	Spots      int `json:"spots"`
	Pores      int `json:"pores"`
}

// AnalysisResult is the success response envelope.
type AnalysisResult struct {
	ReportHTML string   `json:"reportHtml"`
	Scores     ScoreSet `json:"scores"`
}

// Treatment is one row of the fixed catalog embedded into the prompt.
type Treatment struct {
	Category    string
	Name        string
	Description string
	Price       int
}
