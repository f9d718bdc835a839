package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error body every endpoint returns: a human-readable message
// and, for eligibility refusals, the stable machine reason code.
type Response struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
	Reason  string `json:"reason,omitempty"`
}

// AbortWithError writes the error body and keeps the original error on the
// context for the logging middleware.
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	abort(c, Response{Status: status, Message: msg}, err)
}

func abort(c *gin.Context, resp Response, err error) {
	if err != nil {
		_ = c.Error(gin.Error{
			Err:  err,
			Type: gin.ErrorTypePublic,
			Meta: resp,
		})
	}
	c.AbortWithStatusJSON(resp.Status, resp)
}
