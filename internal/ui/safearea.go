package ui

import (
	"fyne.io/fyne/v2"

	"github.com/asgardex/asgardex-native/internal/integration"
)

// safeAreaLayout keeps its objects inside the insets reported at layout time,
// so rotation and resizes pick up the new notch and system bar positions.
type safeAreaLayout struct {
	insets func() integration.Insets
}

// newSafeAreaLayout returns a layout padded by the current insets.
func newSafeAreaLayout(insets func() integration.Insets) fyne.Layout {
	return &safeAreaLayout{insets: insets}
}

// Layout places every object in the area left inside the insets.
func (l *safeAreaLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	in := l.insets()
	pos := fyne.NewPos(in.Left, in.Top)
	inner := fyne.NewSize(
		max(0, size.Width-in.Left-in.Right),
		max(0, size.Height-in.Top-in.Bottom),
	)
	for _, o := range objects {
		o.Move(pos)
		o.Resize(inner)
	}
}

// MinSize is the largest object minimum plus the insets.
func (l *safeAreaLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	in := l.insets()
	size := fyne.NewSize(0, 0)
	for _, o := range objects {
		size = size.Max(o.MinSize())
	}
	return size.Add(fyne.NewSize(in.Left+in.Right, in.Top+in.Bottom))
}
