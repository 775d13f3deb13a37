package render

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/cognicore/dreamlog/pkg/dreamlog/display"
	"github.com/cognicore/dreamlog/pkg/dreamlog/rank"
)

// DefaultColors cycle over the words of a cloud.
var DefaultColors = []string{"#4285F4", "#EA4335", "#FBBC05", "#34A853", "#673AB7"}

// Cloud geometry.
const (
	CloudWidth   = 760
	CloudHeight  = 600
	MinFontSize  = 14
	MaxFontSize  = 64
	cloudPadding = 12
)

// CloudWord is a placed word of a cloud.
type CloudWord struct {
	Text  string
	Score float64
	Color string
	Size  float64
	X, Y  float64
}

// Cloud is a laid out word cloud.
type Cloud struct {
	Width, Height int
	Words         []CloudWord
}

// WordCloud lays out entries, largest first, as rows of words. Pair labels
// are shortened to "singular/tail" and colors are taken from colors in turn
// (DefaultColors when empty). Font sizes grow linearly with the score.
func WordCloud(entries []rank.Entry, colors []string) Cloud {
	if len(colors) == 0 {
		colors = DefaultColors
	}
	max := 0.0
	for _, e := range entries {
		if e.Score > max {
			max = e.Score
		}
	}

	cloud := Cloud{Width: CloudWidth, Height: CloudHeight}
	x, y := float64(cloudPadding), float64(cloudPadding)
	rowHeight := 0.0
	for i, e := range entries {
		size := float64(MinFontSize)
		if max > 0 {
			size += (e.Score / max) * (MaxFontSize - MinFontSize)
		}
		text := display.ShortenSingPlu(e.Display)
		w := textWidth(text, size)
		if x+w > CloudWidth-cloudPadding && x > cloudPadding {
			x = cloudPadding
			y += rowHeight
			rowHeight = 0
		}
		if lh := size * 1.2; lh > rowHeight {
			rowHeight = lh
		}
		cloud.Words = append(cloud.Words, CloudWord{
			Text:  text,
			Score: e.Score,
			Color: colors[i%len(colors)],
			Size:  size,
			X:     x,
			Y:     y + size,
		})
		x += w + size/2
	}
	if bottom := int(y+rowHeight) + cloudPadding; bottom > cloud.Height {
		cloud.Height = bottom
	}
	return cloud
}

// textWidth approximates the rendered width of s.
func textWidth(s string, size float64) float64 {
	return float64(utf8.RuneCountInString(s)) * size * 0.6
}

// SVG writes the cloud as a standalone SVG image.
func (c Cloud) SVG(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		c.Width, c.Height, c.Width, c.Height)
	fmt.Fprintf(bw, `<rect width="100%%" height="100%%" fill="#ffffff"/>`+"\n")
	for _, word := range c.Words {
		fmt.Fprintf(bw, `<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="%.1f" fill="%s">`,
			word.X, word.Y, word.Size, word.Color)
		if err := xml.EscapeText(bw, []byte(word.Text)); err != nil {
			return err
		}
		bw.WriteString("</text>\n")
	}
	bw.WriteString("</svg>\n")
	return bw.Flush()
}
