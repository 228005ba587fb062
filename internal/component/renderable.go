package component

import (
	"dungeon-crawl/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 2

// Renderable describes how an entity is drawn. Lower RenderOrder is drawn
// on top when several renderables share a tile.
type Renderable struct {
	Glyph       string      `json:"glyph"`
	FGColor     tcell.Color `json:"fg"`
	BGColor     tcell.Color `json:"bg"`
	RenderOrder int         `json:"render_order"`
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }
