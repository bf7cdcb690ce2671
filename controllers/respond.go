package controllers

import (
	"log"
	"net/http"

	"ecodenuncias-web/models"

	"github.com/gin-gonic/gin"
)

// respond relays a service envelope to the browser. Local validation maps to
// 400 and transport failures to 502; application-level failure envelopes pass
// through unchanged with a 200, exactly as the upstream delivered them.
func respond[T any](c *gin.Context, env models.Envelope[T]) {
	if !env.Success {
		log.Printf("operacion fallida [%s %s]: %s (%s)", c.Request.Method, c.FullPath(), env.Message, env.ErrorCode)
	}
	c.JSON(statusFor(env.Success, env.ErrorCode), env)
}

func statusFor(success bool, errorCode string) int {
	switch {
	case success:
		return http.StatusOK
	case errorCode == models.ErrorValidacion:
		return http.StatusBadRequest
	case errorCode == models.ErrorRed:
		return http.StatusBadGateway
	default:
		return http.StatusOK
	}
}
