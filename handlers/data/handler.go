package handlers

import (
	"github.com/ZAITAKUSANTEI/my-skin-app/handlers"
	"github.com/ZAITAKUSANTEI/my-skin-app/services"
)

type AppHandlers struct {
	AnalyzeHandler *handlers.AnalyzeHandler
}

func LoadAppHandlers() *AppHandlers {
	return &AppHandlers{
		AnalyzeHandler: handlers.NewAnalyzeHandler(services.NewGoogleServiceFactory()),
	}
}
