package motion

import "go.uber.org/atomic"

// IDGenerator hands out notification ids. It is safe for concurrent use, so a single generator can be
// shared by every device of the agent.
type IDGenerator struct {
	next atomic.Int32
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Next returns the next id. Ids are never zero.
func (g *IDGenerator) Next() int32 {
	for {
		id := g.next.Inc()
		if id != 0 {
			return id
		}
	}
}
