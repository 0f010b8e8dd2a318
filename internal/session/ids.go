package session

import (
	"fmt"

	"github.com/google/uuid"
)

// IDGenerator yields event ids. Implementations must not repeat a value.
type IDGenerator interface {
	NewID() string
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return "task-" + uuid.New().String()
}

// CounterGenerator issues "<prefix><n>" with n counting up from 1.
type CounterGenerator struct {
	Prefix string
	next   int
}

func (g *CounterGenerator) NewID() string {
	g.next++
	return fmt.Sprintf("%s%d", g.Prefix, g.next)
}
