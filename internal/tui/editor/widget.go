package editor

import (
	"net/url"
	"strings"

	"github.com/xonecas/livemark/internal/decor"
)

// widgetRenderer produces the visible text for one widget. Returning "" means
// the widget occupies no cells.
type widgetRenderer func(w *decor.Widget, th Theme) string

// widgetRenderers dispatches on widget kind. Unknown kinds render nothing.
var widgetRenderers = map[decor.WidgetKind]widgetRenderer{
	decor.BulletWidget:     renderBullet,
	decor.ImageWidget:      renderImage,
	decor.EmptyFenceWidget: renderEmptyFence,
}

// renderWidget dispatches to the renderer for w's kind.
func renderWidget(w *decor.Widget, th Theme) string {
	if w == nil {
		return ""
	}
	r, ok := widgetRenderers[w.Kind]
	if !ok {
		return ""
	}
	return r(w, th)
}

func renderBullet(w *decor.Widget, th Theme) string {
	return strings.Repeat(" ", w.Indent) + th.Bullet.Render("•") + " "
}

// renderImage draws a hyperlinked placeholder for an inline image. Images
// with unparseable or non-fetchable URLs render nothing, leaving the hide
// decoration over the source text in effect.
func renderImage(w *decor.Widget, th Theme) string {
	if !th.Images {
		return ""
	}
	u, err := url.Parse(w.URL)
	if err != nil {
		return ""
	}
	switch u.Scheme {
	case "http", "https", "file":
	default:
		return ""
	}
	label := w.Alt
	if label == "" {
		label = "image"
	}
	return hyperlink(w.URL, th.Link.Render("🖼 "+label))
}

func renderEmptyFence(w *decor.Widget, th Theme) string {
	return ""
}

// hyperlink wraps text in an OSC 8 terminal hyperlink.
func hyperlink(url, text string) string {
	return "\x1b]8;;" + url + "\x1b\\" + text + "\x1b]8;;\x1b\\"
}
