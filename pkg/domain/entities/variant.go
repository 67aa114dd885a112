package entities

// SKU uniquely identifies a product variant across the external platform
type SKU string

// VariantID is the platform's opaque identity for a variant. It is the owner
// key for persisted assignment blobs.
type VariantID string

// VariantSnapshot is a read-only view of a variant sourced from the hosted
// platform. The engine never mutates it; it is refreshed by re-querying.
type VariantSnapshot struct {
	SKU            SKU       `json:"sku"`
	VariantID      VariantID `json:"variant_id"`
	ProductTitle   string    `json:"product_title"`
	OnHandQuantity int       `json:"on_hand_quantity"`
}
