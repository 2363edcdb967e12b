package apperr

import "github.com/sarahbeaino/pharmapos/pkg/zerror"

const (
	ValidationErrorCode = "VALIDATION_FAILED"
)

var (
	ValidationErr = zerror.NewValidationFailed(ValidationErrorCode, "validation error")

	SKUConflictErr       = zerror.NewConflict("SKU_CONFLICT", "a product with this SKU already exists")
	InsufficientStockErr = zerror.NewConflict("INSUFFICIENT_STOCK", "not enough stock to complete the sale")

	ProductNotFoundErr       = zerror.NewNotFound("PRODUCT_NOT_FOUND", "product not found")
	ClientNotFoundErr        = zerror.NewNotFound("CLIENT_NOT_FOUND", "client not found")
	SaleNotFoundErr          = zerror.NewNotFound("SALE_NOT_FOUND", "sale not found")
	PurchaseOrderNotFoundErr = zerror.NewNotFound("PURCHASE_ORDER_NOT_FOUND", "purchase order not found")

	InvalidCredentialsErr = zerror.NewUnauthorized("INVALID_CREDENTIALS", "invalid username or password")
	InvalidTokenErr       = zerror.NewUnauthorized("INVALID_TOKEN", "invalid or expired token")
)
