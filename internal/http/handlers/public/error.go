package public

import (
	"github.com/rigforge/internal/http/handlers/shared"
	"github.com/rigforge/internal/http/response"
	"github.com/rigforge/internal/service"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, key string, err error) {
	shared.RespondError(c, code, key, err)
}

func respondMapped(c *gin.Context, err error, rules []shared.MappedError) {
	shared.RespondMappedError(c, err, rules, response.CodeInternal, "error.internal")
}

var productQueryErrorRules = []shared.MappedError{
	{Target: service.ErrInvalidCategory, Code: response.CodeBadRequest, Key: "error.product_category_invalid"},
	{Target: service.ErrInvalidInput, Code: response.CodeBadRequest, Key: "error.bad_request"},
}

var cartErrorRules = []shared.MappedError{
	{Target: service.ErrInvalidInput, Code: response.CodeBadRequest, Key: "error.bad_request"},
	{Target: service.ErrInvalidQuantity, Code: response.CodeBadRequest, Key: "error.quantity_invalid"},
	{Target: service.ErrProductNotFound, Code: response.CodeNotFound, Key: "error.product_not_found"},
	{Target: service.ErrProductNotAvailable, Code: response.CodeBadRequest, Key: "error.product_not_available"},
	{Target: service.ErrInsufficientStock, Code: response.CodeBadRequest, Key: "error.insufficient_stock"},
}

var orderErrorRules = []shared.MappedError{
	{Target: service.ErrInvalidInput, Code: response.CodeBadRequest, Key: "error.bad_request"},
	{Target: service.ErrInvalidOrderAmount, Code: response.CodeBadRequest, Key: "error.order_amount_invalid"},
	{Target: service.ErrInvalidQuantity, Code: response.CodeBadRequest, Key: "error.quantity_invalid"},
	{Target: service.ErrInvalidPrice, Code: response.CodeBadRequest, Key: "error.product_price_invalid"},
	{Target: service.ErrUserNotFound, Code: response.CodeNotFound, Key: "error.user_not_found"},
	{Target: service.ErrOrderNotFound, Code: response.CodeNotFound, Key: "error.order_not_found"},
	{Target: service.ErrProductNotFound, Code: response.CodeNotFound, Key: "error.product_not_found"},
}

var wishlistErrorRules = []shared.MappedError{
	{Target: service.ErrUserNotFound, Code: response.CodeNotFound, Key: "error.user_not_found"},
	{Target: service.ErrProductNotFound, Code: response.CodeNotFound, Key: "error.product_not_found"},
	{Target: service.ErrProductNotActive, Code: response.CodeBadRequest, Key: "error.product_not_active"},
	{Target: service.ErrWishlistDuplicate, Code: response.CodeConflict, Key: "error.wishlist_duplicate"},
	{Target: service.ErrWishlistItemNotFound, Code: response.CodeNotFound, Key: "error.wishlist_item_not_found"},
}

var reviewErrorRules = []shared.MappedError{
	{Target: service.ErrInvalidRating, Code: response.CodeBadRequest, Key: "error.rating_invalid"},
	{Target: service.ErrReviewNotPurchased, Code: response.CodeForbidden, Key: "error.review_not_purchased"},
	{Target: service.ErrReviewDuplicate, Code: response.CodeConflict, Key: "error.review_duplicate"},
}

var userErrorRules = []shared.MappedError{
	{Target: service.ErrInvalidInput, Code: response.CodeBadRequest, Key: "error.bad_request"},
	{Target: service.ErrPasswordTooShort, Code: response.CodeBadRequest, Key: "error.password_min_length"},
	{Target: service.ErrInvalidRole, Code: response.CodeBadRequest, Key: "error.role_invalid"},
	{Target: service.ErrEmailExists, Code: response.CodeConflict, Key: "error.email_exists"},
}
