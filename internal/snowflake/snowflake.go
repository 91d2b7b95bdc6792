package snowflake

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// Generator hands out unique int64 ids for new feed entries.
type Generator struct {
	node *snowflake.Node
}

// New creates a generator for the given node ID.
// Node ID should be unique across all instances (0-1023).
func New(nodeID int64) (*Generator, error) {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("create snowflake node %d: %w", nodeID, err)
	}
	return &Generator{node: n}, nil
}

// NextID generates a new unique snowflake ID.
func (g *Generator) NextID() int64 {
	return g.node.Generate().Int64()
}
