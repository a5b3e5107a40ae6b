package progress

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/norman-ai/norman-cli/internal/domain"
)

const barWidth = 24

func renderView(board *Board, s styles) string {
	lines := []string{s.title.Render(operationTitle(board.Operation))}
	if len(board.EntityIDs) > 0 || board.AccountID != "" {
		lines = append(lines, s.header.Render(entityHeader(board)))
	}

	if len(board.Stages()) == 0 {
		lines = append(lines, s.empty.Render("No progress reported yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, stage := range board.Stages() {
		lines = append(lines, stageLine(stage, board.Status(stage), s))
		if stage == domain.StageFlags && board.Polls() > 0 {
			lines = append(lines, "  "+flagLine(board, s))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func operationTitle(op domain.Operation) string {
	switch op {
	case domain.OperationModelUpload:
		return "Model upload"
	case domain.OperationInvocation:
		return "Invocation"
	case "":
		return "Progress"
	default:
		return string(op)
	}
}

func entityHeader(board *Board) string {
	parts := make([]string, 0, 2)
	if board.AccountID != "" {
		parts = append(parts, "account: "+string(board.AccountID))
	}
	if len(board.EntityIDs) > 0 {
		parts = append(parts, "entities: "+strings.Join(board.EntityIDs, ", "))
	}
	return strings.Join(parts, "  ")
}

func stageLine(stage domain.Stage, status domain.StageStatus, s styles) string {
	var marker string
	switch status {
	case domain.StatusFinished:
		marker = s.finished.Render("✓")
	case domain.StatusWaiting:
		marker = s.waiting.Render("…")
	default:
		marker = s.waiting.Render("•")
	}

	label := s.stage.Render(stageLabel(stage))
	return fmt.Sprintf("%s %s %s", marker, label, s.header.Render(strings.ToLower(string(status))))
}

func stageLabel(stage domain.Stage) string {
	return strings.ReplaceAll(string(stage), "_", " ")
}

func flagLine(board *Board, s styles) string {
	flags := board.Flags()
	counts := board.FlagCounts()
	total := len(flags)

	finishedPercent := 0.0
	if total > 0 {
		finishedPercent = 100 * float64(counts[domain.FlagFinished]) / float64(total)
	}

	parts := []string{
		s.flagKey.Render("flags:"),
		renderProgressBar(finishedPercent, barWidth, s),
		lipgloss.NewStyle().Foreground(interpolateColor(finishedPercent, 0, 100)).
			Render(fmt.Sprintf("%d/%d finished", counts[domain.FlagFinished], total)),
	}
	for _, value := range []domain.FlagValue{domain.FlagRunning, domain.FlagPending} {
		if counts[value] > 0 {
			parts = append(parts, s.header.Render(fmt.Sprintf("%d %s", counts[value], strings.ToLower(string(value)))))
		}
	}
	if counts[domain.FlagError] > 0 {
		parts = append(parts, s.failed.Render(fmt.Sprintf("%d failed", counts[domain.FlagError])))
	}

	return strings.Join(parts, " ")
}

func renderProgressBar(percent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(percent) / 100))
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// interpolateColor maps value onto the 240..255 greyscale ramp.
func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	return lipgloss.Color(fmt.Sprintf("%d", int(240+15*normalized)))
}
