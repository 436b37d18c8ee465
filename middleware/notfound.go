package middleware

import (
	"net/http"

	"github.com/ZAITAKUSANTEI/my-skin-app/message"
	"github.com/gin-gonic/gin"
)

func PathNotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, message.ReturnCustomMessage("path not found"))
		c.Abort()
	}
}
