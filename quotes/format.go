package quotes

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"strings"
)

const separator = "--------------------------------------------------"

func NewPrinter(locale string) (*message.Printer, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, err
	}
	return message.NewPrinter(tag), nil
}

// Format renders one polling cycle.
func Format(q *Quotes, p *message.Printer) string {
	var b strings.Builder
	b.WriteString(p.Sprintf("[%s]\n", q.At.Format("15:04:05")))
	b.WriteString(p.Sprintf("Bitcoin price: BRL %.2f | USD %.2f\n", q.BTCBRL, q.BTCUSD))
	b.WriteString(p.Sprintf("USD to BRL exchange rate: USD 1.00 = BRL %.2f\n", q.USDBRL))
	for _, idx := range q.Indices {
		b.WriteString(p.Sprintf("%s: %.0f points\n", idx.Name, idx.Points))
	}
	b.WriteString(separator)
	b.WriteString("\n")
	return b.String()
}
