package utils

import (
	"fmt"
	"strings"
	"time"
)

// Formatos de data aceitos. Formatos ambíguos como 01/02/2006 ficam de fora
var dateLayouts = []string{
	time.DateOnly,
	"2006/01/02",
	time.RFC3339,
	time.DateTime,
	"2006-01-02T15:04:05",
	"02 Jan 2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseDate interpreta uma data de calendário, descartando o horário
func ParseDate(dateStr string) (time.Time, error) {
	value := strings.TrimSpace(dateStr)
	if value == "" {
		return time.Time{}, fmt.Errorf("data vazia")
	}

	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			y, m, d := parsed.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, fmt.Errorf("formato de data não reconhecido: %q", dateStr)
}
