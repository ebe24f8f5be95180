package breakout

// Command is a state change queued by a producer (power-up collection or a
// timer) and applied by the loop at a single point in the tick.
type Command interface {
	isCommand()
}

// applyPowerUp applies the effect of a collected power-up.
type applyPowerUp struct {
	Kind PowerUpKind
}

// revertPaddle restores the paddle to its base width.
type revertPaddle struct{}

// revertLaser turns the laser off.
type revertLaser struct{}

// revertSlow undoes a slowball on the balls it slowed.
type revertSlow struct {
	BallIDs []int
	Factor  float64
}

func (applyPowerUp) isCommand() {}
func (revertPaddle) isCommand() {}
func (revertLaser) isCommand()  {}
func (revertSlow) isCommand()   {}

// commandQueue holds commands until the loop drains them.
type commandQueue struct {
	pending []Command
}

func (q *commandQueue) push(c Command) {
	q.pending = append(q.pending, c)
}

// drain returns the queued commands in FIFO order and empties the queue.
func (q *commandQueue) drain() []Command {
	out := q.pending
	q.pending = nil
	return out
}

func (q *commandQueue) clear() {
	q.pending = nil
}

func (q *commandQueue) size() int {
	return len(q.pending)
}
