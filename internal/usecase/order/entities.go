package order

import (
	"github.com/shopspring/decimal"

	domainOrder "givemarket-backend/internal/domain/order"
)

type CreateInput struct {
	TotalAmount    decimal.Decimal `json:"total_amount"`
	BlockchainTxID string          `json:"blockchain_tx_id"`
}

// UpdateInput is the admin/owner free-form patch. Callers wanting state
// integrity should use Cancel / UpdatePaymentStatus instead.
type UpdateInput struct {
	TotalAmount    *decimal.Decimal            `json:"total_amount"`
	Status         *domainOrder.Status         `json:"status"`
	PaymentStatus  *domainOrder.PaymentStatus  `json:"payment_status"`
	BlockchainTxID *string                     `json:"blockchain_tx_id"`
}

type AddItemInput struct {
	ProductID uint64          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}
