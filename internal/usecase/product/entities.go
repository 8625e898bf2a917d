package product

import "github.com/shopspring/decimal"

type CreateInput struct {
	SellerID       uint64          `json:"seller_id"`
	OrganizationID uint64          `json:"organization_id"`
	CategoryID     *uint64         `json:"category_id"`
	NameEn         string          `json:"name_en"`
	NameAr         string          `json:"name_ar"`
	DescriptionEn  string          `json:"description_en"`
	DescriptionAr  string          `json:"description_ar"`
	Price          decimal.Decimal `json:"price"`
}

// EditInput is a partial patch; nil fields are left untouched.
type EditInput struct {
	CategoryID    *uint64          `json:"category_id"`
	NameEn        *string          `json:"name_en"`
	NameAr        *string          `json:"name_ar"`
	DescriptionEn *string          `json:"description_en"`
	DescriptionAr *string          `json:"description_ar"`
	Price         *decimal.Decimal `json:"price"`
}
