package entity

import "time"

type ProductImage struct {
	URL string `json:"url"`
	Key string `json:"key,omitempty"`
}

type ProductSEO struct {
	MetaTitle       string `json:"metaTitle,omitempty"`
	MetaDescription string `json:"metaDescription,omitempty"`
}

type Product struct {
	ID            string         `json:"_id"`
	Store         *StoreRef      `json:"store,omitempty"`
	Title         string         `json:"title"`
	Description   string         `json:"description,omitempty"`
	MainCategory  string         `json:"mainCategory,omitempty"`
	Category      string         `json:"category,omitempty"`
	SubCategory   string         `json:"subCategory,omitempty"`
	ChildCategory string         `json:"childCategory,omitempty"`
	Price         float64        `json:"price"`
	DiscountPrice float64        `json:"discountPrice,omitempty"`
	StockQuantity int            `json:"stockQuantity,omitempty"`
	Tags          []string       `json:"tags,omitempty"`
	SEO           *ProductSEO    `json:"seo,omitempty"`
	MainImage     *ProductImage  `json:"mainImage,omitempty"`
	ImageGallery  []ProductImage `json:"imageGallery,omitempty"`
	Status        string         `json:"status,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

type Category struct {
	ID       string     `json:"_id"`
	Name     string     `json:"name"`
	Slug     string     `json:"slug,omitempty"`
	Children []Category `json:"children,omitempty"`
}
