package tempo

import (
	"fmt"
	"strings"
	"time"
)

// FormatTempoRestante formata a distância entre dataFim e now em texto
// amigável ("⏳ Faltam 1 dia, 2 horas" / "❌ Vencida há 10 horas").
// Função pura: determinística dados os dois instantes.
//
// Nota: quando há dias ou horas, os minutos são omitidos de propósito
// (1h30 vira "1 hora"). Comportamento herdado da versão original da agenda.
func FormatTempoRestante(dataFim, now time.Time) string {
	delta := dataFim.Sub(now)

	if delta <= 0 {
		// vencida
		horas := int((-delta) / time.Hour)
		switch {
		case horas > 48:
			return fmt.Sprintf("❌ Vencida há %d dias", horas/24)
		case horas > 0:
			return fmt.Sprintf("❌ Vencida há %d horas", horas)
		default:
			return "❌ VENCIDA AGORA"
		}
	}

	totalSegundos := int(delta / time.Second)

	dias := totalSegundos / 86400
	totalSegundos -= dias * 86400

	horas := totalSegundos / 3600
	totalSegundos -= horas * 3600

	minutos := totalSegundos / 60

	var partes []string
	if dias > 0 {
		partes = append(partes, fmt.Sprintf("%d dia%s", dias, plural(dias)))
	}
	if horas > 0 {
		partes = append(partes, fmt.Sprintf("%d hora%s", horas, plural(horas)))
	}
	if minutos > 0 && dias == 0 && horas == 0 {
		partes = append(partes, fmt.Sprintf("%d minuto%s", minutos, plural(minutos)))
	}

	if len(partes) == 0 {
		return "⏳ Vence em breve..."
	}
	return "⏳ Faltam " + strings.Join(partes, ", ")
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
