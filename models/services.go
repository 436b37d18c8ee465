package appschema

// vision service annotate structs
type VisionAnnotateRequest struct {
	Requests []AnnotateImageRequest `json:"requests"`
}

type AnnotateImageRequest struct {
	Image    VisionImage     `json:"image"`
	Features []VisionFeature `json:"features"`
}

type VisionImage struct {
	Content string `json:"content"`
}

type VisionFeature struct {
	Type       string `json:"type"`
	MaxResults int    `json:"maxResults,omitempty"`
}

type VisionAnnotateResponse struct {
	Responses []AnnotateImageResponse `json:"responses"`
}

type AnnotateImageResponse struct {
	FaceAnnotations []FaceAnnotation `json:"faceAnnotations"`
	Error           *VisionStatus    `json:"error,omitempty"`
}

type VisionStatus struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// FaceAnnotation carries the attributes the score calculator reads.
// Likelihood fields are one of UNKNOWN, VERY_UNLIKELY, UNLIKELY,
// POSSIBLE, LIKELY, VERY_LIKELY. TiltAngle is in degrees.
type FaceAnnotation struct {
	TiltAngle              float64 `json:"tiltAngle"`
	JoyLikelihood          string  `json:"joyLikelihood"`
	SorrowLikelihood       string  `json:"sorrowLikelihood"`
	SurpriseLikelihood     string  `json:"surpriseLikelihood"`
	UnderExposedLikelihood string  `json:"underExposedLikelihood"`
	BlurredLikelihood      string  `json:"blurredLikelihood"`
}

// generative service structs
type GenerateContentRequest struct {
	Contents []GenerativeContent `json:"contents"`
}

type GenerativeContent struct {
	Role  string           `json:"role,omitempty"`
	Parts []GenerativePart `json:"parts"`
}

type GenerativePart struct {
	Text string `json:"text"`
}

type GenerateContentResponse struct {
	Candidates []GenerativeCandidate `json:"candidates"`
}

type GenerativeCandidate struct {
	Content      GenerativeContent `json:"content"`
	FinishReason string            `json:"finishReason,omitempty"`
}
