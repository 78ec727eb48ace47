package domain

import (
	"time"
)

type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Cost      float64   `json:"cost"` // Menggunakan float untuk kemudahan, decimal lebih baik untuk uang
	Rating    int       `json:"rating"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
