// Package world provides the playground the robot moves on.
package world

import "github.com/samdwyer/toyrobot/internal/config"

// Playground is a fixed rectangle of legal coordinates.
type Playground struct {
	startX, startY   int
	lengthX, lengthY int
}

// NewPlayground creates a playground from its configuration.
func NewPlayground(cfg config.Playground) *Playground {
	return &Playground{
		startX:  cfg.StartX,
		startY:  cfg.StartY,
		lengthX: cfg.LengthX,
		lengthY: cfg.LengthY,
	}
}

// Contains returns true if the given point is on the playground.
func (p *Playground) Contains(x, y int) bool {
	return x >= p.startX && x <= p.startX+p.lengthX-1 &&
		y >= p.startY && y <= p.startY+p.lengthY-1
}

// Bounds returns the inclusive corners of the playground.
func (p *Playground) Bounds() (minX, minY, maxX, maxY int) {
	return p.startX, p.startY, p.startX + p.lengthX - 1, p.startY + p.lengthY - 1
}

// Width returns the number of columns.
func (p *Playground) Width() int { return p.lengthX }

// Height returns the number of rows.
func (p *Playground) Height() int { return p.lengthY }
