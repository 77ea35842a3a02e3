package middleware

import (
	"net/http"
	"reflect"

	"bitbucket.org/crgw/rental-quote/internal/schema"
	"bitbucket.org/crgw/rental-quote/internal/tools/responding"
	"github.com/gin-gonic/gin"
)

const (
	ParamsKey string = "params"
)

// PrepareParams binds the JSON body into a fresh value of val's type and
// stores the pointer under ParamsKey.
func PrepareParams(val any) gin.HandlerFunc {
	value := reflect.ValueOf(val)
	if value.Kind() == reflect.Ptr {
		panic(`Bind struct can not be a pointer.`)
	}

	typ := value.Type()

	return func(ctx *gin.Context) {
		params := reflect.New(typ).Interface()

		err := ctx.ShouldBindJSON(params)
		if err != nil {
			responding.HandleError(ctx, http.StatusBadRequest, schema.InvalidRequestError, "Failed to bind request params", err)
			return
		}

		ctx.Set(ParamsKey, params)
	}
}
