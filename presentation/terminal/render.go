// ABOUTME: Renders view state snapshots as styled text for the terminal reader
// ABOUTME: Covers the provider badge, article cards, loading, error and empty states

package terminal

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"newsfeed-api/core/domain"
	"newsfeed-api/core/settings"
	"newsfeed-api/core/viewstate"
	"newsfeed-api/pkg/utils/duration"
)

// Messages shown for non-article states
const (
	AppTitle         = "News Feed"
	LoadingMessage   = "Loading articles..."
	LoadingMoreMsg   = "Loading more..."
	EmptyMessage     = "No articles found."
	LoadMoreHint     = "More articles available"
	ImagePlaceholder = "[ no image ]"
)

// cardWidth is the rendered card width in cells
const cardWidth = 72

// Renderer turns state snapshots into styled text
type Renderer struct {
	now func() time.Time

	title   lipgloss.Style
	badge   lipgloss.Style
	card    lipgloss.Style
	heading lipgloss.Style
	source  lipgloss.Style
	body    lipgloss.Style
	link    lipgloss.Style
	image   lipgloss.Style
	muted   lipgloss.Style
	banner  lipgloss.Style
}

// NewRenderer creates a renderer for w using the palette of theme
func NewRenderer(w io.Writer, theme settings.Theme) *Renderer {
	r := lipgloss.NewRenderer(w)
	p := PaletteFor(theme)

	return &Renderer{
		now: time.Now,

		title: r.NewStyle().
			Foreground(p.Text).
			Bold(true),
		badge: r.NewStyle().
			Foreground(p.Accent).
			Background(p.Badge).
			Padding(0, 1),
		card: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1).
			Width(cardWidth),
		heading: r.NewStyle().
			Foreground(p.Text).
			Bold(true),
		source: r.NewStyle().
			Foreground(p.Accent),
		body: r.NewStyle().
			Foreground(p.Muted),
		link: r.NewStyle().
			Foreground(p.Accent).
			Underline(true),
		image: r.NewStyle().
			Foreground(p.Muted).
			Italic(true),
		muted: r.NewStyle().
			Foreground(p.Muted),
		banner: r.NewStyle().
			Foreground(p.Error).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(p.Error).
			Padding(0, 1),
	}
}

// Header renders the title line with the provider badge when known
func (r *Renderer) Header(s viewstate.State) string {
	line := r.title.Render(AppTitle)
	if s.Provider != "" {
		line += "  " + r.muted.Render("Source:") + " " + r.badge.Render(s.Provider.String())
	}
	return line + "\n" + r.muted.Render(describeIntent(s.Intent))
}

// Card renders one article
func (r *Renderer) Card(a domain.Article) string {
	image := ImagePlaceholder
	if a.HasImage() {
		image = a.Image
	}

	byline := r.source.Render(a.SourceLabel())
	if age := duration.Ago(a.PublishedAt, r.now()); age != "" {
		byline += " " + r.muted.Render("· "+age)
	}

	lines := []string{
		r.image.Render(image),
		r.heading.Render(a.Title) + "  " + byline,
	}
	if a.Description != "" {
		lines = append(lines, r.body.Render(a.Description))
	}
	if a.URL != "" {
		lines = append(lines, r.link.Render("Read: "+a.URL))
	}

	return r.card.Render(strings.Join(lines, "\n"))
}

// Render renders a full state snapshot
func (r *Renderer) Render(s viewstate.State) string {
	var b strings.Builder

	b.WriteString(r.Header(s))
	b.WriteString("\n")

	if s.Status == viewstate.Error && s.Err != "" {
		b.WriteString("\n")
		b.WriteString(r.banner.Render(s.Err))
		b.WriteString("\n")
	}

	if len(s.Articles) == 0 && s.Loading() {
		b.WriteString("\n")
		b.WriteString(r.muted.Render(LoadingMessage))
		b.WriteString("\n")
	}

	for _, a := range s.Articles {
		b.WriteString("\n")
		b.WriteString(r.Card(a))
		b.WriteString("\n")
	}

	switch {
	case s.Loading() && len(s.Articles) > 0:
		b.WriteString("\n")
		b.WriteString(r.muted.Render(LoadingMoreMsg))
		b.WriteString("\n")
	case s.CanLoadMore():
		b.WriteString("\n")
		b.WriteString(r.muted.Render(fmt.Sprintf("%s (page %d)", LoadMoreHint, s.Page)))
		b.WriteString("\n")
	case s.Empty():
		b.WriteString("\n")
		b.WriteString(r.muted.Render(EmptyMessage))
		b.WriteString("\n")
	}

	return b.String()
}

// Categories renders the category list with the active one marked
func (r *Renderer) Categories(active string) string {
	names := append([]string{""}, domain.Categories...)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		label := "All"
		if name != "" {
			label = strings.ToUpper(name[:1]) + name[1:]
		}
		if name == active {
			parts = append(parts, r.badge.Render(label))
		} else {
			parts = append(parts, r.muted.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func describeIntent(intent domain.SearchIntent) string {
	switch {
	case intent.QueryText != "":
		return fmt.Sprintf("Search: %q", intent.QueryText)
	case intent.Category != "":
		return "Category: " + intent.Category
	default:
		return "Latest news"
	}
}
