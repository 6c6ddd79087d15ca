package fighter

// BufferCap bounds how many commands can queue up behind a playing
// action. Two is enough for one chained follow-up plus one more tap;
// anything beyond that is the player mashing.
const BufferCap = 2

// ActionBuffer is a fixed-capacity FIFO of commands issued while the
// fighter is locked in a non-interruptible action. Pushing onto a full
// buffer evicts the oldest entry, so the most recent inputs win.
type ActionBuffer struct {
	cmds [BufferCap]Command
	head int
	size int
}

// Push appends cmd, dropping the oldest buffered command when full.
func (b *ActionBuffer) Push(cmd Command) {
	if b.size == BufferCap {
		b.head = (b.head + 1) % BufferCap
		b.size--
	}
	b.cmds[(b.head+b.size)%BufferCap] = cmd
	b.size++
}

// Pop removes and returns the oldest buffered command.
func (b *ActionBuffer) Pop() (Command, bool) {
	if b.size == 0 {
		return 0, false
	}
	cmd := b.cmds[b.head]
	b.head = (b.head + 1) % BufferCap
	b.size--
	return cmd, true
}

// Len returns the number of buffered commands.
func (b *ActionBuffer) Len() int {
	return b.size
}

// Commands returns the buffered commands oldest first.
func (b *ActionBuffer) Commands() []Command {
	out := make([]Command, 0, b.size)
	for i := 0; i < b.size; i++ {
		out = append(out, b.cmds[(b.head+i)%BufferCap])
	}
	return out
}

// Clear empties the buffer.
func (b *ActionBuffer) Clear() {
	b.head = 0
	b.size = 0
}
