package e

import "fmt"

var (
	// Внутренние ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")

	// 400 Bad Request
	ErrInvalidRequestBody = fmt.Errorf("invalid request body")
	ErrInvalidProductID   = fmt.Errorf("invalid product id")
	ErrProductIDsRequired = fmt.Errorf("productIds must be a non-empty array")

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("product not found")
	ErrNoValidProducts = fmt.Errorf("no valid products found for the given IDs")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
