package tempo

import (
	"testing"
	"time"
)

var base = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func TestFormatTempoRestante_Futuro(t *testing.T) {
	got := FormatTempoRestante(base.Add(25*time.Hour), base)
	if got != "⏳ Faltam 1 dia, 1 hora" {
		t.Fatalf("25h: got %q", got)
	}

	got = FormatTempoRestante(base.Add(3*24*time.Hour+5*time.Hour), base)
	if got != "⏳ Faltam 3 dias, 5 horas" {
		t.Fatalf("3d5h: got %q", got)
	}

	got = FormatTempoRestante(base.Add(30*time.Minute), base)
	if got != "⏳ Faltam 30 minutos" {
		t.Fatalf("30min: got %q", got)
	}

	got = FormatTempoRestante(base.Add(1*time.Minute), base)
	if got != "⏳ Faltam 1 minuto" {
		t.Fatalf("1min: got %q", got)
	}
}

// 1h30 reporta só "1 hora": minutos são descartados quando há horas ou dias.
// Comportamento herdado, não "consertar".
func TestFormatTempoRestante_MinutosOmitidos(t *testing.T) {
	got := FormatTempoRestante(base.Add(90*time.Minute), base)
	if got != "⏳ Faltam 1 hora" {
		t.Fatalf("90min: got %q", got)
	}

	got = FormatTempoRestante(base.Add(24*time.Hour+45*time.Minute), base)
	if got != "⏳ Faltam 1 dia" {
		t.Fatalf("1d45min: got %q", got)
	}
}

func TestFormatTempoRestante_VenceEmBreve(t *testing.T) {
	got := FormatTempoRestante(base.Add(40*time.Second), base)
	if got != "⏳ Vence em breve..." {
		t.Fatalf("40s: got %q", got)
	}
}

func TestFormatTempoRestante_Vencida(t *testing.T) {
	got := FormatTempoRestante(base.Add(-50*time.Hour), base)
	if got != "❌ Vencida há 2 dias" {
		t.Fatalf("-50h: got %q", got)
	}

	got = FormatTempoRestante(base.Add(-10*time.Hour), base)
	if got != "❌ Vencida há 10 horas" {
		t.Fatalf("-10h: got %q", got)
	}

	// exatamente 48h continua em horas; só acima de 48 vira dias
	got = FormatTempoRestante(base.Add(-48*time.Hour), base)
	if got != "❌ Vencida há 48 horas" {
		t.Fatalf("-48h: got %q", got)
	}

	got = FormatTempoRestante(base, base)
	if got != "❌ VENCIDA AGORA" {
		t.Fatalf("agora: got %q", got)
	}

	got = FormatTempoRestante(base.Add(-30*time.Minute), base)
	if got != "❌ VENCIDA AGORA" {
		t.Fatalf("-30min: got %q", got)
	}
}
