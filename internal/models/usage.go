// internal/models/usage.go
package models

import (
	"time"
)

type Channel string

const (
	ChannelMCP  Channel = "mcp"
	ChannelREST Channel = "rest"
)

// ToolUsage records that a calculator ran. Inputs and results are never stored.
type ToolUsage struct {
	ID        string    `json:"id"`
	Tool      string    `json:"tool"`
	Channel   Channel   `json:"channel"`
	CreatedAt time.Time `json:"created_at"`
}

type ToolUsageStat struct {
	Tool     string    `json:"tool"`
	Count    int       `json:"count"`
	LastUsed time.Time `json:"last_used"`
}
