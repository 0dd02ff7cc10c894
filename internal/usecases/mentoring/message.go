package mentoring

import (
	"fmt"
	"strings"

	"github.com/vfg2006/tradelite-api/internal/domain"
)

const messageTopItems = 3

func severityEmoji(severity string) string {
	switch severity {
	case domain.SeverityCritical:
		return "🔴"
	case domain.SeverityHigh:
		return "🟡"
	default:
		return "🟢"
	}
}

func priorityEmoji(priority string) string {
	switch priority {
	case domain.SeverityCritical:
		return "🔥"
	case domain.SeverityHigh:
		return "⚡"
	default:
		return "📌"
	}
}

// BuildMentorMessage compõe o texto enviado ao promotor com os três primeiros
// problemas e as três primeiras recomendações da análise.
func BuildMentorMessage(analysis domain.VisitAnalysis) string {
	var b strings.Builder

	b.WriteString("👋 Olá! Aqui é o Mentor PDV da TradeLite.\n\n")
	fmt.Fprintf(&b, "📍 Analisamos a execução na loja **%s**.\n\n", analysis.Store)
	fmt.Fprintf(&b, "📊 **Score de Execução:** %d/100 (Nota %s)\n\n", analysis.ChecklistScore, analysis.ExecutionGrade)

	if len(analysis.IssuesDetected) > 0 {
		b.WriteString("⚠️ **Pontos de Atenção Identificados:**\n")
		for _, issue := range head(analysis.IssuesDetected, messageTopItems) {
			fmt.Fprintf(&b, "%s %s\n", severityEmoji(issue.Severity), issue.Description)
		}
		b.WriteString("\n")
	}

	b.WriteString("💡 **Recomendações Prioritárias:**\n")
	for _, rec := range head(analysis.Recommendations, messageTopItems) {
		fmt.Fprintf(&b, "%s %s\n", priorityEmoji(rec.Priority), rec.Action)
		fmt.Fprintf(&b, "   📈 Impacto estimado: %s\n\n", rec.EstimatedImpact)
	}

	fmt.Fprintf(&b, "🎯 **Impacto Total Estimado:** %s\n\n", analysis.EstimatedTotalImpact)
	fmt.Fprintf(&b, "📅 **Próxima Visita Sugerida:** %s", analysis.NextVisitSuggested)

	return b.String()
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
