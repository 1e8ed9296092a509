package game

import "testing"

func TestRefillReachesCount(t *testing.T) {
	var b BonusSet
	rng := NewRand(7)
	b.Refill(4, 25, 14, rng)
	if b.Len() != 4 {
		t.Fatalf("len = %d", b.Len())
	}
	for _, p := range b.Positions() {
		if p.X < 0 || p.X >= 25 || p.Y < 0 || p.Y >= 14 {
			t.Fatalf("bonus %v outside the board", p)
		}
	}

	b.Refill(2, 25, 14, rng)
	if b.Len() != 4 {
		t.Fatalf("refill to a smaller count removed bonuses")
	}
}

func TestTakeIfAtRemovesFirstMatch(t *testing.T) {
	b := BonusSet{items: []Pos{{1, 1}, {2, 2}, {1, 1}}}
	if b.TakeIfAt(Pos{5, 5}) {
		t.Fatalf("took a missing bonus")
	}
	if !b.TakeIfAt(Pos{1, 1}) {
		t.Fatalf("did not take (1,1)")
	}
	got := b.Positions()
	if len(got) != 2 || got[0] != (Pos{2, 2}) || got[1] != (Pos{1, 1}) {
		t.Fatalf("remaining = %v", got)
	}
}

func TestPositionsIsACopy(t *testing.T) {
	b := BonusSet{items: []Pos{{1, 1}}}
	b.Positions()[0] = Pos{9, 9}
	if b.items[0] != (Pos{1, 1}) {
		t.Fatalf("Positions exposed internal storage")
	}
}

func TestRefillCoversEveryTile(t *testing.T) {
	var b BonusSet
	b.Refill(200, 3, 2, NewRand(3))

	seen := map[Pos]bool{}
	for _, p := range b.Positions() {
		if p.X < 0 || p.X > 2 || p.Y < 0 || p.Y > 1 {
			t.Fatalf("bonus %v outside a 3x2 board", p)
		}
		seen[p] = true
	}
	if len(seen) != 6 {
		t.Fatalf("200 bonuses reached %d of 6 tiles", len(seen))
	}
}
