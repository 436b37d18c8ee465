package message

import "net/http"

type Body struct {
	Message string `json:"message"`
}

func ReturnMessage(code int) *Body {
	return &Body{Message: http.StatusText(code)}
}

func ReturnCustomMessage(msg string) *Body {
	return &Body{Message: msg}
}
