package fighter

import "testing"

func TestActionBuffer_FIFO(t *testing.T) {
	var b ActionBuffer

	b.Push(CommandAttack1)
	b.Push(CommandSpecial)

	if b.Len() != 2 {
		t.Fatalf("len = %d, want 2", b.Len())
	}
	if cmd, ok := b.Pop(); !ok || cmd != CommandAttack1 {
		t.Fatalf("first pop = %s (%v), want %s", cmd, ok, CommandAttack1)
	}
	if cmd, ok := b.Pop(); !ok || cmd != CommandSpecial {
		t.Fatalf("second pop = %s (%v), want %s", cmd, ok, CommandSpecial)
	}
	if _, ok := b.Pop(); ok {
		t.Fatal("expected empty buffer")
	}
}

func TestActionBuffer_DropsOldestWhenFull(t *testing.T) {
	var b ActionBuffer

	b.Push(CommandJump)
	b.Push(CommandAttack1)
	b.Push(CommandAttack2) // evicts the jump

	if b.Len() != 2 {
		t.Fatalf("len = %d, want 2", b.Len())
	}
	got := b.Commands()
	want := []Command{CommandAttack1, CommandAttack2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("commands = %v, want %v", got, want)
		}
	}
}

func TestActionBuffer_ReusesSlotsAfterPop(t *testing.T) {
	var b ActionBuffer

	b.Push(CommandAttack1)
	b.Push(CommandAttack2)
	b.Pop()
	b.Push(CommandSpecial)

	if cmd, ok := b.Pop(); !ok || cmd != CommandAttack2 {
		t.Fatalf("pop = %s (%v), want %s", cmd, ok, CommandAttack2)
	}
	if cmd, ok := b.Pop(); !ok || cmd != CommandSpecial {
		t.Fatalf("pop = %s (%v), want %s", cmd, ok, CommandSpecial)
	}
}

func TestActionBuffer_Clear(t *testing.T) {
	var b ActionBuffer

	b.Push(CommandAttack1)
	b.Clear()

	if b.Len() != 0 {
		t.Fatalf("len after clear = %d, want 0", b.Len())
	}
	if _, ok := b.Pop(); ok {
		t.Fatal("expected pop from cleared buffer to fail")
	}
}
