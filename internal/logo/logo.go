// Package logo fetches the company logo and draws it with half-block cells.
package logo

import (
	"context"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/draw"
)

const maxBytes = 4 << 20

var DefaultClient = &http.Client{Timeout: 5 * time.Second}

// Fetch downloads and decodes an image. One plain GET, no cache, no retry.
func Fetch(ctx context.Context, client *http.Client, url string) (image.Image, error) {
	if client == nil {
		client = DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get logo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("get logo: status %d", resp.StatusCode)
	}
	img, _, err := image.Decode(io.LimitReader(resp.Body, maxBytes))
	if err != nil {
		return nil, fmt.Errorf("decode logo: %w", err)
	}
	log.WithFields(log.Fields{"url": url, "size": img.Bounds().Size()}).Debug("logo fetched")
	return img, nil
}

// Render scales img to cols×rows terminal cells. Each cell shows two pixels
// stacked: the upper one as foreground of "▀", the lower one as background.
func Render(img image.Image, cols, rows int) string {
	if img == nil || cols <= 0 || rows <= 0 {
		return ""
	}
	dst := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)

	var b strings.Builder
	for y := 0; y < rows*2; y += 2 {
		for x := 0; x < cols; x++ {
			top, bot := dst.RGBAAt(x, y), dst.RGBAAt(x, y+1)
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(hex(top))).
				Background(lipgloss.Color(hex(bot))).
				Render("▀"))
		}
		if y+2 < rows*2 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func hex(c color.RGBA) string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

// Badge is the text fallback used when the logo cannot be shown.
func Badge(text string, bg lipgloss.TerminalColor) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffffff")).
		Background(bg).
		Padding(0, 1).
		Render(text)
}
