package donation

import (
	"github.com/shopspring/decimal"

	domainDonation "givemarket-backend/internal/domain/donation"
)

type CreateInput struct {
	OrganizationID uint64               `json:"organization_id"`
	Amount         decimal.Decimal      `json:"amount"`
	Type           domainDonation.Type  `json:"type"`
	OrderID        *uint64              `json:"order_id"`
}
