package model

// ID identifies an item. Opaque: only compared for equality.
type ID string

// Item is the domain model for a shopping-list entry.
// Checked and InEdit are independent; both may be true.
type Item struct {
	ID      ID     `json:"id"`
	Name    string `json:"name"`
	Checked bool   `json:"checked"`
	InEdit  bool   `json:"in_edit"`
}
