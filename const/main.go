package constants

var FRONT_IMAGE_FIELD_NAME = "frontImage"
var IMAGE_EXTENSIONS = []string{".png", ".jpeg", ".jpg"}

var VISION_SERVICE_PATHS = []string{
	"v1/images:annotate",
}

var GENERATIVE_MODEL = "gemini-1.5-flash-002"
var GENERATIVE_SERVICE_PATH_FORMAT = "v1/projects/%s/locations/%s/publishers/google/models/%s:generateContent"
