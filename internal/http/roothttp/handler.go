package roothttp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Register(r gin.IRouter) {
	r.GET("/", hello)
}

func hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello world"})
}
