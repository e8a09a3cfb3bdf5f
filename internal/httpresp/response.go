package httpresp

import "github.com/gin-gonic/gin"

// OK escreve o payload como está: os consumidores dos relatórios e da
// listagem dependem do formato array puro.
func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}
