package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GenerateTitleHandler generates a title for one comment thread synchronously.
// Request Body: TitleRequest
func (api *API) GenerateTitleHandler(c *gin.Context) {
	var req TitleRequest
	if !BindJSON(c, &req) {
		return
	}

	if result := ValidateTitleRequest(&req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	method, result := ValidateMethod(req.Method, api.engine.DefaultMethod())
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	doc, detail := api.engine.Explain(method, req.Title, req.Comments)
	if !doc.OK() {
		_ = c.Error(doc.Err)
		SendGenerationError(c, req.Title, doc.Err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"original_title":  doc.Title,
		"generated_title": doc.Generated,
		"method":          doc.Method,
		"detail":          detail,
	})
}
