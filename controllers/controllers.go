package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Juggernaut7/Task-Tidy/config"
)

// identity pulls the authenticated caller out of the context. The auth
// middleware guarantees both values on private routes.
func identity(c *gin.Context) (uid, username string) {
	return c.GetString("uid"), c.GetString("username")
}

// bindError renders a 400. Binding failures caused by validation rules get
// itemized per field; anything else (malformed JSON) reports the raw error.
func bindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]gin.H, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, gin.H{
				"field": fe.Field(),
				"rule":  fe.Tag(),
				"param": fe.Param(),
			})
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": fields})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "error": err.Error()})
}

// serverError logs and renders a 500.
func serverError(c *gin.Context, logMsg string, err error, kv ...interface{}) {
	config.Logger.Errorw(logMsg, append([]interface{}{"error", err}, kv...)...)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
}
