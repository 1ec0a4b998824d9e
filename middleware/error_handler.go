package middleware

import (
	"MatZipLog/utils"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandlerMiddleware turns errors attached to the gin context into the
// standard JSON envelope. CustomError keeps its status code and kind; anything
// else becomes a 500 with its detail appended for the caller.
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var customErr *utils.CustomError
		if errors.As(err, &customErr) {
			utils.ErrorResponse(c, customErr.StatusCode, customErr.Message)
			return
		}

		utils.ErrorResponse(c, http.StatusInternalServerError, "내부 오류가 발생했습니다: "+err.Error())
	}
}
