package sinkhole

import "testing"

func TestPoolSpawnReusesFirstFreeSlot(t *testing.T) {
	p := NewPool[int](3)

	for want := 0; want < 3; want++ {
		if got := p.Spawn(want * 10); got != want {
			t.Fatalf("Spawn() = %d, expected %d", got, want)
		}
	}

	if got := p.Spawn(99); got != -1 {
		t.Errorf("Spawn() on full pool = %d, expected -1", got)
	}
	if p.ActiveCount() != 3 {
		t.Errorf("ActiveCount() = %d, expected 3", p.ActiveCount())
	}

	p.Despawn(1)
	if got := p.Spawn(7); got != 1 {
		t.Errorf("Spawn() after Despawn(1) = %d, expected 1", got)
	}
	if *p.At(1) != 7 {
		t.Errorf("At(1) = %d, expected 7", *p.At(1))
	}
}

func TestPoolAllSkipsReleasedSlots(t *testing.T) {
	p := NewPool[string](4)
	p.Spawn("a")
	p.Spawn("b")
	p.Spawn("c")
	p.Despawn(0)

	var seen []string
	for i, v := range p.All() {
		seen = append(seen, *v)
		if i == 1 {
			p.Despawn(2)
		}
	}

	if len(seen) != 1 || seen[0] != "b" {
		t.Errorf("All() yielded %v, expected [b]", seen)
	}
}

func TestPoolDespawnOutOfRange(t *testing.T) {
	p := NewPool[int](1)
	p.Despawn(-1)
	p.Despawn(5)
	if p.IsActive(5) {
		t.Error("IsActive(5) = true on a one-slot pool")
	}
}

func TestPoolClearAndCopies(t *testing.T) {
	p := NewPool[int](2)
	p.Spawn(1)
	mask := p.ActiveMask()
	slots := p.Slots()

	p.Clear()
	*p.At(0) = 5

	if !mask[0] || slots[0] != 1 {
		t.Error("ActiveMask()/Slots() should be copies")
	}
	if p.ActiveCount() != 0 {
		t.Errorf("ActiveCount() after Clear = %d, expected 0", p.ActiveCount())
	}
}
