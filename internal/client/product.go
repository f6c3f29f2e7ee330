package client

import (
	"context"
	"net/url"
	"strings"

	"vendorpanel/internal/domain/entity"
	"vendorpanel/pkg/response"
)

type ProductService struct {
	client *Client
}

type ProductListOptions struct {
	StoreID      string
	MainCategory string
	Page         int
	Limit        int
}

type productPage struct {
	Items      []entity.Product    `json:"items"`
	Products   []entity.Product    `json:"products"`
	Pagination response.Pagination `json:"pagination"`
}

func (s *ProductService) List(ctx context.Context, opts ProductListOptions) ([]entity.Product, *response.Pagination, error) {
	q := pageQuery(opts.Page, opts.Limit)
	if opts.StoreID != "" {
		q.Set("storeId", opts.StoreID)
	}
	if opts.MainCategory != "" {
		q.Set("mainCategory", opts.MainCategory)
	}

	var page productPage
	if err := s.client.get(ctx, "/vendor/get-all-products", q, &page); err != nil {
		return nil, nil, err
	}
	items := page.Items
	if items == nil {
		items = page.Products
	}
	return items, &page.Pagination, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*entity.Product, error) {
	var product entity.Product
	if err := s.client.get(ctx, "/product/"+url.PathEscape(id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// ProductForm carries the multipart payload for creating or updating a
// product. The multipart field names written by submit are fixed by the
// backend's upload middleware and must not be changed.
type ProductForm struct {
	Store                   string
	Title                   string
	Description             string
	DeliveryAndReturnPolicy string
	MainCategory            string
	Category                string
	SubCategory             string
	ChildCategory           string
	Price                   string
	DiscountPrice           string
	StockQuantity           string
	WholesalePrice          string
	Size                    string
	Brand                   string
	Measurement             string
	Color                   string
	Tags                    []string
	SEO                     *entity.ProductSEO

	MainImage    *File
	ImageGallery []File
	Video        *File
	Documents    []File
}

func (p *ProductForm) form() *form {
	f := &form{}
	f.addOptionalField("store", p.Store)
	f.addField("title", p.Title)
	f.addField("description", p.Description)
	f.addOptionalField("deliveryAndReturnPolicy", p.DeliveryAndReturnPolicy)
	f.addOptionalField("mainCategory", p.MainCategory)
	f.addOptionalField("category", p.Category)
	f.addOptionalField("subCategory", p.SubCategory)
	f.addOptionalField("childCategory", p.ChildCategory)
	f.addOptionalField("price", p.Price)
	f.addOptionalField("discountPrice", p.DiscountPrice)
	f.addOptionalField("stockQuantity", p.StockQuantity)
	f.addOptionalField("wholesalePrice", p.WholesalePrice)
	f.addOptionalField("size", p.Size)
	f.addOptionalField("brand", p.Brand)
	f.addOptionalField("measurement", p.Measurement)
	f.addOptionalField("color", p.Color)
	if len(p.Tags) > 0 {
		f.addField("tags", strings.Join(p.Tags, ","))
	}
	if p.SEO != nil {
		f.addField("seo", marshalJSONField(p.SEO))
	}

	if p.MainImage != nil {
		f.addFile("mainImage", *p.MainImage)
	}
	for _, g := range p.ImageGallery {
		f.addFile("imageGallery", g)
	}
	if p.Video != nil {
		f.addFile("video", *p.Video)
	}
	for _, d := range p.Documents {
		f.addFile("documents", d)
	}
	return f
}

func (s *ProductService) Create(ctx context.Context, input *ProductForm) (*entity.Product, error) {
	var product entity.Product
	if err := s.client.doMultipart(ctx, "POST", "/product", input.form(), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Update(ctx context.Context, id string, input *ProductForm) (*entity.Product, error) {
	var product entity.Product
	if err := s.client.doMultipart(ctx, "PUT", "/product/"+url.PathEscape(id), input.form(), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.client.delete(ctx, "/product/"+url.PathEscape(id), nil, nil)
}
