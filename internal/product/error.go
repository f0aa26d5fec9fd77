package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidProduct  = errors.New("invalid product input")
	ErrInvalidCategory = errors.New("unknown product category")
)
