package organization

type CreateInput struct {
	NameEn            string `json:"name_en"`
	NameAr            string `json:"name_ar"`
	DescriptionEn     string `json:"description_en"`
	DescriptionAr     string `json:"description_ar"`
	BlockchainAddress string `json:"blockchain_address"`
}
