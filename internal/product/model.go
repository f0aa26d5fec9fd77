package product

import "time"

// Categories is the storefront's fixed category set.
var Categories = []string{"스킨케어", "선케어", "클렌징", "메이크업"}

func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       int64   `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Details     *string `json:"details,omitempty"`
	Ingredients *string `json:"ingredients,omitempty"`
	CreatedAt   time.Time
}

type UpsertInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       int64   `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Details     *string `json:"details"`
	Ingredients *string `json:"ingredients"`
}
