package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description" json:"description"`
	Price        float64            `bson:"price" json:"price"`
	Ratings      float64            `bson:"ratings" json:"ratings"`
	Images       []ProductImage     `bson:"images" json:"images"`
	Category     string             `bson:"category" json:"category"`
	Brand        string             `bson:"brand" json:"brand"`
	SkinType     []string           `bson:"skinType" json:"skinType"`
	Status       string             `bson:"status" json:"status"`
	Stock        int64              `bson:"stock" json:"stock"`
	NumOfReviews int64              `bson:"numOfReviews" json:"numOfReviews"`
	User         primitive.ObjectID `bson:"user,omitempty" json:"user,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type ProductImage struct {
	PublicID string `bson:"publicId" json:"publicId"`
	URL      string `bson:"url" json:"url"`
}

// Skin types a product may be suitable for. Every persisted product
// carries at least one of these.
var SkinTypes = []string{"Oily", "Dry", "Combination", "Normal", "Sensitive"}

func IsValidSkinType(value string) bool {
	for _, st := range SkinTypes {
		if st == value {
			return true
		}
	}
	return false
}
