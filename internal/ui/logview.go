package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/asgardex/asgardex-native/internal/logging"
)

// LogTimeFormat is the timestamp shown per viewer line.
const LogTimeFormat = "15:04:05"

// LogView shows the records buffered by the webview log sink and follows new
// ones as they arrive.
type LogView struct {
	hook        *logging.WebviewHook
	records     []logging.Record
	list        *widget.List
	unsubscribe func()
}

// NewLogView creates a viewer over hook.
func NewLogView(hook *logging.WebviewHook) *LogView {
	v := &LogView{hook: hook}

	v.list = widget.NewList(
		func() int { return len(v.records) },
		func() fyne.CanvasObject {
			return widget.NewRichTextWithText("")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			rt := obj.(*widget.RichText)
			rec := v.records[id]
			rt.Segments = []widget.RichTextSegment{&widget.TextSegment{
				Text: FormatRecord(rec),
				Style: widget.RichTextStyle{
					ColorName: LevelColor(rec.Level),
					TextStyle: fyne.TextStyle{Monospace: true},
				},
			}}
			rt.Refresh()
		},
	)

	v.records, v.unsubscribe = hook.SnapshotAndSubscribe(func(rec logging.Record) {
		fyne.Do(func() { v.append(rec) })
	})
	return v
}

func (v *LogView) append(rec logging.Record) {
	v.records = append(v.records, rec)
	if limit := v.hook.Capacity(); len(v.records) > limit {
		v.records = v.records[len(v.records)-limit:]
	}
	v.list.Refresh()
	v.list.ScrollToBottom()
}

// Object returns the widget tree of the viewer.
func (v *LogView) Object() fyne.CanvasObject {
	return container.NewBorder(widget.NewLabelWithStyle("Logs", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}), nil, nil, nil, v.list)
}

// Close stops following the log.
func (v *LogView) Close() {
	v.unsubscribe()
}

// FormatRecord renders one viewer line.
func FormatRecord(rec logging.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %-5s %s", rec.Time.Format(LogTimeFormat), strings.ToUpper(rec.Level.String()), rec.Message)
	if c, ok := rec.Fields["component"]; ok {
		fmt.Fprintf(&b, " [%v]", c)
	}
	return b.String()
}
