package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mkarren/lanes/internal/cards"
	"github.com/mkarren/lanes/internal/rows"
	"github.com/mkarren/lanes/internal/tui/layout"
)

// renderView builds the whole frame: title bar, visible rows, info
// panel, and help bar. The search overlay replaces the rows when
// active.
func (a App) renderView() string {
	var b strings.Builder

	b.WriteString(a.renderTitleBar())
	b.WriteString("\n\n")

	if a.search.Active {
		b.WriteString(a.renderSearchOverlay())
	} else {
		b.WriteString(a.renderRows())
	}

	b.WriteString("\n")
	b.WriteString(a.renderInfoPanel())
	b.WriteString("\n")
	b.WriteString(a.renderHelpBar())

	return a.styles.App.Render(b.String())
}

func (a App) renderTitleBar() string {
	title := "Library"
	if folder := a.coordinator.Folder(); folder != nil && folder.Name != "" {
		title = folder.Name
	}
	bar := a.styles.TitleBar.Render(title)
	if a.notice != "" {
		bar += "  " + a.styles.Notice.Render(a.notice)
	}
	return bar
}

// renderRows paints the vertically scrolled row viewport.
func (a App) renderRows() string {
	all := a.coordinator.Rows()
	if len(all) == 0 {
		return a.styles.Empty.Render("No rows configured.")
	}

	// Each row costs header lines plus the tallest card footprint.
	rowCost := a.cfg.Surface.HeaderLines + a.cfg.Cell.MinRows + 2
	visible := layout.CalculateSurfaceHeight(a.height, a.cfg.Surface) / rowCost
	if visible < 1 {
		visible = 1
	}
	offset := layout.CalculateRowOffset(a.rowCursor, len(all), visible)

	var parts []string
	for i := offset; i < len(all) && i < offset+visible; i++ {
		parts = append(parts, a.renderRow(i, all[i]))
	}
	return strings.Join(parts, "\n")
}

func (a App) renderRow(index int, row *rows.Adapter) string {
	header := a.styles.RowHeader.Render(row.Header())
	if !row.Static() && row.TotalCount() > 0 {
		header += a.styles.CardInfo.Render(fmt.Sprintf("  %d/%d", row.Len(), row.TotalCount()))
	}

	var body string
	switch {
	case row.Status() == rows.StatusLoading && row.Len() == 0:
		body = a.styles.Empty.Render("Loading...")
	case row.Len() == 0:
		body = a.styles.Empty.Render("Nothing here.")
	default:
		body = a.renderCards(index, row)
	}

	return header + "\n" + body + "\n"
}

// renderCards paints the horizontally scrolled card strip of one row.
func (a App) renderCards(rowIndex int, row *rows.Adapter) string {
	focused := rowIndex == a.rowCursor
	cursor := a.colCursors[rowIndex]

	// Probe the first card for the row's footprint; rows are uniform
	// enough that one probe sizes the viewport.
	probe := row.Card(0)
	policy := cards.Classify(probe, cards.Options{ImageType: a.imageType})
	pw, ph := cards.ResolveDimensions(policy, probe.StaticHeight, row.Heights(), a.layoutMode, a.imageType)
	cell := layout.CellsForCard(pw, ph, a.cfg.Cell)

	visible := layout.VisibleCards(a.width-4, cell.Columns, a.cfg.Cell.Gap)
	offset := layout.CalculateRowOffset(cursor, row.Len(), visible)

	var rendered []string
	for i := offset; i < row.Len() && i < offset+visible; i++ {
		card := row.Card(i)
		selected := focused && i == cursor
		rendered = append(rendered, a.renderCard(card, row.Heights(), selected))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (a App) renderCard(card *cards.Card, hp cards.HeightProfile, selected bool) string {
	policy := cards.Classify(card, cards.Options{ImageType: a.imageType})
	pw, ph := cards.ResolveDimensions(policy, card.StaticHeight, hp, a.layoutMode, a.imageType)
	cell := layout.CellsForCard(pw, ph, a.cfg.Cell)

	inner := cell.Columns - 2
	if inner < 4 {
		inner = 4
	}

	if card.IsButton() {
		style := a.styles.CardButton
		if selected {
			style = a.styles.CardSelected.Align(lipgloss.Center, lipgloss.Center)
		}
		return style.Width(inner).Height(cell.Rows-2).Render(card.Name()) + strings.Repeat(" ", a.cfg.Cell.Gap)
	}

	var lines []string
	lines = append(lines, a.renderBadgeLine(card, policy, inner))
	lines = append(lines, a.renderImageArea(card, policy, inner, cell.Rows-4)...)
	name, _ := layout.TruncateText(card.Name(), inner, a.cfg.Text)
	lines = append(lines, a.styles.CardName.Render(name))
	if policy.InfoUnder {
		info, _ := layout.TruncateText(card.Subtitle(), inner, a.cfg.Text)
		lines = append(lines, a.styles.CardInfo.Render(info))
	}
	if policy.ShowProgress {
		if pct := card.Item.ProgressPercent(); pct > 0 {
			lines = append(lines, a.renderProgress(pct, inner))
		}
	}

	style := a.styles.Card
	if selected {
		style = a.styles.CardSelected
	}
	return style.Width(inner).Render(strings.Join(lines, "\n")) + strings.Repeat(" ", a.cfg.Cell.Gap)
}

// renderBadgeLine paints the top strip: banner text or watched and
// favorite badges, right-aligned.
func (a App) renderBadgeLine(card *cards.Card, policy cards.Policy, width int) string {
	switch policy.Banner {
	case cards.BannerFuture:
		return a.styles.Banner.Render(layout.PadToWidth("COMING SOON", width, a.cfg.Text))
	case cards.BannerMissing:
		return a.styles.Banner.Render(layout.PadToWidth("MISSING", width, a.cfg.Text))
	}

	var badges string
	if card.Item != nil {
		if count, show := cards.WatchedBadge(card.Item, policy, a.watchedMode); show {
			if count > 0 {
				badges = a.styles.Badge.Render(fmt.Sprintf("%d", count))
			} else {
				badges = a.styles.Badge.Render("v")
			}
		}
		if card.Item.Favorite() {
			badges += a.styles.Favorite.Render("*")
		}
	}

	pad := width - layout.VisibleLength(badges)
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + badges
}

// renderImageArea paints the image block: the blurhash tint once the
// load settled, a placeholder glyph otherwise.
func (a App) renderImageArea(card *cards.Card, policy cards.Policy, width, height int) []string {
	if height < 1 {
		height = 1
	}

	fill := " "
	style := a.styles.Empty
	switch {
	case card.Tint != "" && card.Slot.Displayed():
		style = lipgloss.NewStyle().Background(lipgloss.Color(card.Tint))
	case card.Slot.Pending():
		// Cleared until the settle pass gives up on the load.
	default:
		fill = placeholderGlyph(policy.Placeholder)
	}

	mid := height / 2
	lines := make([]string, height)
	for i := range lines {
		content := strings.Repeat(" ", width)
		if i == mid && fill != " " {
			pad := (width - 1) / 2
			content = strings.Repeat(" ", pad) + fill + strings.Repeat(" ", width-pad-1)
		}
		lines[i] = style.Render(content)
	}
	return lines
}

func placeholderGlyph(p cards.Placeholder) string {
	switch p {
	case cards.PlaceholderAudio:
		return "♪"
	case cards.PlaceholderPerson:
		return "@"
	case cards.PlaceholderFolder:
		return "/"
	case cards.PlaceholderPhoto:
		return "□"
	case cards.PlaceholderTV:
		return "#"
	case cards.PlaceholderChapter:
		return "¶"
	case cards.PlaceholderSeriesTimer:
		return "T"
	case cards.PlaceholderBlur:
		return "·"
	default:
		return "▸"
	}
}

func (a App) renderProgress(pct, width int) string {
	if pct > 100 {
		pct = 100
	}
	filled := width * pct / 100
	return a.styles.Progress.Render(strings.Repeat("━", filled)) +
		a.styles.ProgressRest.Render(strings.Repeat("─", width-filled))
}

func (a App) renderInfoPanel() string {
	if a.info.Title == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString(a.styles.InfoTitle.Render(a.info.Title))
	if a.info.Meta != "" {
		b.WriteString("\n")
		b.WriteString(a.styles.InfoMeta.Render(a.info.Meta))
	}
	if a.info.Body != "" {
		b.WriteString("\n")
		b.WriteString(a.styles.InfoBody.Render(a.info.Body))
	}
	return b.String()
}

func (a App) renderSearchOverlay() string {
	width := layout.CalculateOverlayWidth(a.width, a.cfg.Overlay)

	var b strings.Builder
	b.WriteString(a.search.Input.View())
	b.WriteString("\n\n")

	if len(a.search.Results) == 0 {
		if a.search.Input.Value() != "" {
			b.WriteString(a.styles.Empty.Render("No matches."))
		}
		return b.String()
	}

	max := a.cfg.Overlay.MaxVisible
	for i, result := range a.search.Results {
		if i >= max {
			break
		}
		line := highlightMatches(result.Card.Name(), result.MatchedIndexes, a.styles.SearchMatch)
		line = layout.TruncateANSIAware(line, width, a.cfg.Text)
		if i == a.search.Cursor {
			line = "> " + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// highlightMatches styles the matched runes of a fuzzy result.
func highlightMatches(text string, indexes []int, style lipgloss.Style) string {
	matched := make(map[int]bool, len(indexes))
	for _, i := range indexes {
		matched[i] = true
	}

	var b strings.Builder
	for i, r := range []rune(text) {
		if matched[i] {
			b.WriteString(style.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (a App) renderHelpBar() string {
	return a.styles.Help.Render(a.renderHints())
}
