package model

// ShoppingListItem is one product line in a shopping list. Quantity is always
// at least 1.
type ShoppingListItem struct {
	ID        string `json:"id"`
	ListID    string `json:"listId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Purchased bool   `json:"purchased"`
}

// ShoppingList is a user-curated list of products. Items are embedded and
// kept in insertion order.
type ShoppingList struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	DateCreated Date               `json:"dateCreated"`
	Items       []ShoppingListItem `json:"items"`
}

// Item returns the index of the item with the given id, or -1.
func (l *ShoppingList) Item(itemID string) int {
	for i := range l.Items {
		if l.Items[i].ID == itemID {
			return i
		}
	}
	return -1
}

// ItemForProduct returns the index of the item referencing productID, or -1.
func (l *ShoppingList) ItemForProduct(productID string) int {
	for i := range l.Items {
		if l.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}
