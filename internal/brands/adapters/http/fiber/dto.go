package fiber

import (
	"time"

	"support-dashboard-service/internal/brands/core/domain"
)

// CreateBrandRequest represents brand creation payload
// @Description Brand creation DTO. Email and api_token are optional; the
// @Description account-wide helpdesk credentials are used when they are empty.
type CreateBrandRequest struct {
	Name     string `json:"name" example:"Acme Support"`
	URL      string `json:"url" example:"acme"`
	Email    string `json:"email" example:"ops@acme.test"`
	APIToken string `json:"api_token"`
}

type BrandResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	Email       string    `json:"email,omitempty"`
	HasAPIToken bool      `json:"has_api_token"`
	CreatedAt   time.Time `json:"created_at"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_brand"`
	Message string `json:"message,omitempty" example:"name and url are required"`
}

func toBrandResponse(b domain.Brand) BrandResponse {
	return BrandResponse{
		ID:          b.ID,
		Name:        b.Name,
		URL:         b.URL,
		Email:       b.Email,
		HasAPIToken: b.APIToken != "",
		CreatedAt:   b.CreatedAt,
	}
}
