// internal/wallet/wallet.go
package wallet

import "slices"

// Wallet is an ordered set of card ids. Membership is toggled, never duplicated.
type Wallet struct {
	ids []string
}

func New(ids ...string) *Wallet {
	w := &Wallet{}
	for _, id := range ids {
		w.Add(id)
	}
	return w
}

func (w *Wallet) Contains(id string) bool {
	return slices.Contains(w.ids, id)
}

// Add reports whether the card was newly added.
func (w *Wallet) Add(id string) bool {
	if id == "" || w.Contains(id) {
		return false
	}
	w.ids = append(w.ids, id)
	return true
}

// Remove reports whether the card was present.
func (w *Wallet) Remove(id string) bool {
	i := slices.Index(w.ids, id)
	if i < 0 {
		return false
	}
	w.ids = slices.Delete(w.ids, i, i+1)
	return true
}

// Toggle flips membership and returns the new state.
func (w *Wallet) Toggle(id string) bool {
	if w.Remove(id) {
		return false
	}
	return w.Add(id)
}

func (w *Wallet) IDs() []string {
	return append([]string(nil), w.ids...)
}

func (w *Wallet) Len() int {
	return len(w.ids)
}
