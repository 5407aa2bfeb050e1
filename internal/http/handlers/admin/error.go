package admin

import (
	"github.com/rigforge/internal/http/handlers/shared"
	"github.com/rigforge/internal/http/response"
	"github.com/rigforge/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func requestLog(c *gin.Context) *zap.SugaredLogger {
	return shared.RequestLog(c)
}

func respondError(c *gin.Context, code int, key string, err error) {
	shared.RespondError(c, code, key, err)
}

func respondMapped(c *gin.Context, err error, rules []shared.MappedError) {
	shared.RespondMappedError(c, err, rules, response.CodeInternal, "error.internal")
}

var productErrorRules = []shared.MappedError{
	{Target: service.ErrInvalidInput, Code: response.CodeBadRequest, Key: "error.bad_request"},
	{Target: service.ErrInvalidCategory, Code: response.CodeBadRequest, Key: "error.product_category_invalid"},
	{Target: service.ErrInvalidSpecs, Code: response.CodeBadRequest, Key: "error.product_specs_invalid"},
	{Target: service.ErrInvalidPrice, Code: response.CodeBadRequest, Key: "error.product_price_invalid"},
	{Target: service.ErrInvalidStock, Code: response.CodeBadRequest, Key: "error.product_stock_invalid"},
}

var productImageErrorRules = []shared.MappedError{
	{Target: service.ErrInvalidInput, Code: response.CodeBadRequest, Key: "error.bad_request"},
	{Target: service.ErrProductNotFound, Code: response.CodeNotFound, Key: "error.product_not_found"},
}

var orderStatusErrorRules = []shared.MappedError{
	{Target: service.ErrOrderStatusInvalid, Code: response.CodeBadRequest, Key: "error.order_status_invalid"},
}
