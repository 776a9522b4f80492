package dto

// ReplenishmentSuggestion producto a reponer con la cantidad sugerida de pedido.
type ReplenishmentSuggestion struct {
	ProductID         string `json:"product_id"`
	ProductName       string `json:"product_name"`
	Status            string `json:"status"`
	CurrentStock      int    `json:"current_stock"`
	ReorderPoint      *int   `json:"reorder_point,omitempty"`
	StockMin          *int   `json:"stock_min,omitempty"`
	IdealStock        int    `json:"ideal_stock"`
	SuggestedOrderQty int    `json:"suggested_order_qty"`
	Priority          int    `json:"priority"`
}

// ReplenishmentResponse lista de reposición a una fecha de referencia.
type ReplenishmentResponse struct {
	ReferenceDate string                    `json:"reference_date"`
	Items         []ReplenishmentSuggestion `json:"items"`
}
