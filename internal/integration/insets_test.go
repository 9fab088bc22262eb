package integration

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
)

type notchedCanvas struct {
	fyne.Canvas
	size fyne.Size
	pos  fyne.Position
	area fyne.Size
}

func (c notchedCanvas) Size() fyne.Size { return c.size }

func (c notchedCanvas) InteractiveArea() (fyne.Position, fyne.Size) { return c.pos, c.area }

func TestInsetsOf(t *testing.T) {
	c := notchedCanvas{
		size: fyne.NewSize(400, 800),
		pos:  fyne.NewPos(0, 44),
		area: fyne.NewSize(400, 722),
	}

	assert.Equal(t, Insets{Top: 44, Left: 0, Bottom: 34, Right: 0}, InsetsOf(c))
}

func TestInsetsOfFullArea(t *testing.T) {
	c := notchedCanvas{size: fyne.NewSize(800, 600), area: fyne.NewSize(800, 600)}
	assert.Equal(t, Insets{}, InsetsOf(c))
}
