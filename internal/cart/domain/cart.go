package domain

// CartEntry adalah referensi sparse ke katalog: hanya product id + quantity.
// Koleksi ini dimiliki cart service di belakang, BFF hanya membacanya.
type CartEntry struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CartLineItem adalah CartEntry yang sudah di-join dengan data katalog,
// siap ditampilkan dan dihitung totalnya. Dibuat fresh setiap assembly,
// tidak pernah disimpan.
type CartLineItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Cost      float64 `json:"cost"`
	Rating    int     `json:"rating"`
	ImageURL  string  `json:"image_url"`
	Quantity  int     `json:"quantity"`
}

// QuantityPolicy menentukan perlakuan quantity nol/negatif saat assembly.
type QuantityPolicy int

const (
	// QuantityPassThrough meneruskan quantity apa adanya, termasuk nol dan
	// negatif. Ini perilaku default.
	QuantityPassThrough QuantityPolicy = iota
	// QuantityClampZero menaikkan quantity negatif menjadi nol.
	QuantityClampZero
	// QuantityReject membuang entry dengan quantity <= 0, dicatat sebagai warning.
	QuantityReject
)

const (
	WarnMissingProduct   = "MISSING_PRODUCT"
	WarnRejectedQuantity = "REJECTED_QUANTITY"
)

// AssembleWarning mencatat entry yang di-drop saat assembly. Tidak pernah
// jadi error: cart view tetap dirender dengan item yang tersisa.
type AssembleWarning struct {
	ProductID string `json:"product_id"`
	Kind      string `json:"kind"`
	Message   string `json:"message"`
}

type AssembleResult struct {
	Items    []CartLineItem    `json:"items"`
	Warnings []AssembleWarning `json:"warnings,omitempty"`
}

// CartView adalah payload lengkap untuk halaman cart.
type CartView struct {
	Items      []CartLineItem    `json:"items"`
	TotalValue float64           `json:"total_value"`
	TotalItems int               `json:"total_items"`
	Warnings   []AssembleWarning `json:"warnings,omitempty"`
}
