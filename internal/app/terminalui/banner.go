package terminalui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/yourname/ingest_lite/internal/models"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#dc3545")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#198754")).Bold(true)
)

// Banner рисует строку обратной связи: нейтральное сообщение перерисовывается на месте,
// ошибка и успех завершают строку маркером ✗ / ✓.
type Banner struct {
	w             io.Writer
	styled        bool
	text          string
	state         models.FeedbackState
	lastLineWidth int
	mu            sync.Mutex
}

// NewBanner создаёт баннер поверх w; styled включает цвета lipgloss.
func NewBanner(w io.Writer, styled bool) *Banner {
	return &Banner{w: w, styled: styled}
}

// Show заменяет текст и состояние баннера.
func (b *Banner) Show(feedback string, state models.FeedbackState) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.text = feedback
	b.state = state

	line := b.lineLocked()
	width := len(feedback)
	padding := ""
	if b.lastLineWidth > width {
		padding = strings.Repeat(" ", b.lastLineWidth-width)
	}

	if state == models.FeedbackNeutral {
		b.lastLineWidth = width
		fmt.Fprintf(b.w, "\r%s%s", line, padding)
		return
	}

	b.lastLineWidth = 0
	fmt.Fprintf(b.w, "\r%s%s\n", line, padding)
}

// Text возвращает текущий текст баннера.
func (b *Banner) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text
}

// State возвращает текущее визуальное состояние.
func (b *Banner) State() models.FeedbackState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Banner) lineLocked() string {
	switch b.state {
	case models.FeedbackError:
		return b.render(errorStyle, "✗ "+b.text)
	case models.FeedbackSuccess:
		return b.render(successStyle, "✓ "+b.text)
	default:
		return b.text
	}
}

func (b *Banner) render(style lipgloss.Style, s string) string {
	if !b.styled {
		return s
	}
	return style.Render(s)
}
