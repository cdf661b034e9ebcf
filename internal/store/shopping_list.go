package store

import "github.com/dukerupert/pricetrack/internal/model"

// AddShoppingList creates an empty list with a generated id and today's date.
func (s *Store) AddShoppingList(name string) model.ShoppingList {
	s.mu.Lock()
	l := model.ShoppingList{
		ID:          s.newID(),
		Name:        name,
		DateCreated: s.today(),
		Items:       []model.ShoppingListItem{},
	}
	s.snap.ShoppingLists = append(s.snap.ShoppingLists, l)
	after := s.commit()
	s.mu.Unlock()

	s.notify(Event{Entity: "list", Action: "created", ID: l.ID}, after)
	return l
}

// RenameShoppingList sets a new name. No-op if the id is absent.
func (s *Store) RenameShoppingList(id, name string) {
	s.mu.Lock()
	idx := s.listIndex(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.snap.ShoppingLists[idx].Name = name
	after := s.commit()
	s.mu.Unlock()

	s.notify(Event{Entity: "list", Action: "updated", ID: id}, after)
}

// DeleteShoppingList removes the list; embedded items go with it. No-op if
// the id is absent.
func (s *Store) DeleteShoppingList(id string) {
	s.mu.Lock()
	idx := s.listIndex(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.snap.ShoppingLists = append(s.snap.ShoppingLists[:idx], s.snap.ShoppingLists[idx+1:]...)
	after := s.commit()
	s.mu.Unlock()

	s.notify(Event{Entity: "list", Action: "deleted", ID: id}, after)
}

// AddItemToList adds quantity of a product to the list and returns the
// resulting item. If an item for the product already exists its quantity is
// incremented instead of a duplicate item being appended. Quantities below 1
// count as 1. No-op if the list is absent.
func (s *Store) AddItemToList(listID, productID string, quantity int) (model.ShoppingListItem, bool) {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	idx := s.listIndex(listID)
	if idx < 0 {
		s.mu.Unlock()
		return model.ShoppingListItem{}, false
	}
	l := &s.snap.ShoppingLists[idx]
	var item model.ShoppingListItem
	if i := l.ItemForProduct(productID); i >= 0 {
		l.Items[i].Quantity += quantity
		item = l.Items[i]
	} else {
		item = model.ShoppingListItem{
			ID:        s.newID(),
			ListID:    listID,
			ProductID: productID,
			Quantity:  quantity,
			Purchased: false,
		}
		l.Items = append(l.Items, item)
	}
	after := s.commit()
	s.mu.Unlock()

	s.notify(Event{Entity: "list", Action: "updated", ID: listID}, after)
	return item, true
}

// RemoveItemFromList deletes one item and reports whether it existed.
func (s *Store) RemoveItemFromList(listID, itemID string) bool {
	s.mu.Lock()
	idx := s.listIndex(listID)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	l := &s.snap.ShoppingLists[idx]
	i := l.Item(itemID)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	l.Items = append(l.Items[:i], l.Items[i+1:]...)
	after := s.commit()
	s.mu.Unlock()

	s.notify(Event{Entity: "list", Action: "updated", ID: listID}, after)
	return true
}

// ToggleItemPurchased flips one item's purchased flag and returns the updated
// item. No-op if list or item is absent.
func (s *Store) ToggleItemPurchased(listID, itemID string) (model.ShoppingListItem, bool) {
	s.mu.Lock()
	idx := s.listIndex(listID)
	if idx < 0 {
		s.mu.Unlock()
		return model.ShoppingListItem{}, false
	}
	l := &s.snap.ShoppingLists[idx]
	i := l.Item(itemID)
	if i < 0 {
		s.mu.Unlock()
		return model.ShoppingListItem{}, false
	}
	l.Items[i].Purchased = !l.Items[i].Purchased
	item := l.Items[i]
	after := s.commit()
	s.mu.Unlock()

	s.notify(Event{Entity: "list", Action: "updated", ID: listID}, after)
	return item, true
}

// UpdateItemQuantity sets one item's quantity, clamped to at least 1 so the
// invariant holds regardless of caller, and returns the updated item. No-op
// if list or item is absent.
func (s *Store) UpdateItemQuantity(listID, itemID string, quantity int) (model.ShoppingListItem, bool) {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	idx := s.listIndex(listID)
	if idx < 0 {
		s.mu.Unlock()
		return model.ShoppingListItem{}, false
	}
	l := &s.snap.ShoppingLists[idx]
	i := l.Item(itemID)
	if i < 0 {
		s.mu.Unlock()
		return model.ShoppingListItem{}, false
	}
	l.Items[i].Quantity = quantity
	item := l.Items[i]
	after := s.commit()
	s.mu.Unlock()

	s.notify(Event{Entity: "list", Action: "updated", ID: listID}, after)
	return item, true
}

// ShoppingList returns the list with the given id, items deep-copied.
func (s *Store) ShoppingList(id string) (model.ShoppingList, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.listIndex(id); idx >= 0 {
		l := s.snap.ShoppingLists[idx]
		l.Items = append([]model.ShoppingListItem(nil), l.Items...)
		return l, true
	}
	return model.ShoppingList{}, false
}

func (s *Store) listIndex(id string) int {
	for i := range s.snap.ShoppingLists {
		if s.snap.ShoppingLists[i].ID == id {
			return i
		}
	}
	return -1
}
