package snapshot

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"unicode/utf8"
)

const (
	svgCharWidth  = 8.4
	svgLineHeight = 18
	svgPadding    = 16
	svgFontSize   = 14
	svgForeground = "#e2e8f0"
)

// RenderSVG lays out one <text> element per line in a monospace font.
func RenderSVG(lines []string) []byte {
	cols := 0
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n > cols {
			cols = n
		}
	}
	width := int(float64(cols)*svgCharWidth) + 2*svgPadding
	height := len(lines)*svgLineHeight + 2*svgPadding

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		width, height, width, height)
	buf.WriteString("<title>")
	escape(&buf, Title)
	buf.WriteString("</title>\n")
	fmt.Fprintf(&buf, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", Background)
	fmt.Fprintf(&buf, `<g font-family="Menlo, Consolas, 'DejaVu Sans Mono', monospace" font-size="%d" fill="%s">`+"\n",
		svgFontSize, svgForeground)
	for i, line := range lines {
		y := svgPadding + (i+1)*svgLineHeight - 4
		fmt.Fprintf(&buf, `<text x="%d" y="%d" xml:space="preserve">`, svgPadding, y)
		escape(&buf, line)
		buf.WriteString("</text>\n")
	}
	buf.WriteString("</g>\n</svg>\n")
	return buf.Bytes()
}

func escape(buf *bytes.Buffer, s string) {
	// Writes to a bytes.Buffer never fail.
	_ = xml.EscapeText(buf, []byte(s))
}
