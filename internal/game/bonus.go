package game

// BonusSet holds the bonus tiles on the board in spawn order. Duplicates and
// tiles under the snake are allowed; such a bonus is eaten when the head
// reaches it.
type BonusSet struct {
	items []Pos
}

// Refill spawns uniformly placed bonuses until count are on the board.
func (b *BonusSet) Refill(count, w, h int, rng *Rand) {
	for len(b.items) < count {
		b.items = append(b.items, Pos{X: rng.Range(0, w-1), Y: rng.Range(0, h-1)})
	}
}

// TakeIfAt removes the first bonus at p.
func (b *BonusSet) TakeIfAt(p Pos) bool {
	for i, it := range b.items {
		if it == p {
			b.items = append(b.items[:i], b.items[i+1:]...)
			return true
		}
	}
	return false
}

func (b *BonusSet) Len() int { return len(b.items) }

// Positions returns a copy of the bonus tiles.
func (b *BonusSet) Positions() []Pos {
	return append([]Pos(nil), b.items...)
}

func (b *BonusSet) Clear() { b.items = b.items[:0] }
