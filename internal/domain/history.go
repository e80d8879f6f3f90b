package domain

import "iter"

// History is the append-only ledger of one account. Only Register adds to
// it; callers get the read side.
type History struct {
	items []Transaction
}

func (h *History) append(t Transaction) {
	h.items = append(h.items, t)
}

func (h *History) Len() int {
	return len(h.items)
}

// Transactions returns a copy of every recorded transaction in order.
func (h *History) Transactions() []Transaction {
	out := make([]Transaction, len(h.items))
	copy(out, h.items)
	return out
}

// Filtered yields the recorded transactions whose kind is one of kinds, or
// all of them when kinds is empty. Each range over the sequence starts a
// fresh pass over the history as it is at that moment.
func (h *History) Filtered(kinds ...Kind) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		items := h.items[:len(h.items):len(h.items)]
		for _, t := range items {
			if !matches(t.Kind, kinds) {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

func matches(k Kind, kinds []Kind) bool {
	if len(kinds) == 0 {
		return true
	}
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}
