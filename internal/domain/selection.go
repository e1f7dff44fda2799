package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Selection é o filtro de região escolhido no controle de rádio
type Selection string

const (
	SelectionAll   Selection = "all"
	SelectionNorth Selection = "north"
	SelectionEast  Selection = "east"
	SelectionSouth Selection = "south"
	SelectionWest  Selection = "west"
)

// DefaultSelection é o valor inicial de cada sessão
const DefaultSelection = SelectionAll

var selections = []Selection{
	SelectionAll,
	SelectionNorth,
	SelectionEast,
	SelectionSouth,
	SelectionWest,
}

// Selections retorna as opções na ordem em que aparecem no controle
func Selections() []Selection {
	out := make([]Selection, len(selections))
	copy(out, selections)
	return out
}

// ParseSelection aceita qualquer combinação de maiúsculas e minúsculas
func ParseSelection(value string) (Selection, error) {
	candidate := Selection(strings.ToLower(strings.TrimSpace(value)))
	for _, s := range selections {
		if s == candidate {
			return s, nil
		}
	}
	return "", fmt.Errorf("invalid selection %q", value)
}

// DisplayName é o rótulo legível usado no título do gráfico ("All", "North", ...)
func (s Selection) DisplayName() string {
	// Caser guarda estado, não pode ser compartilhado entre goroutines
	return cases.Title(language.English).String(string(s))
}

// Matches indica se um registro da região informada pertence ao filtro.
// Espaços nas bordas e maiúsculas são ignorados
func (s Selection) Matches(region string) bool {
	if s == SelectionAll {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(region), string(s))
}

// IsKnownRegion indica se a região corresponde a alguma opção do filtro
func IsKnownRegion(region string) bool {
	for _, s := range selections[1:] {
		if s.Matches(region) {
			return true
		}
	}
	return false
}

// SelectionOption é uma opção do controle de rádio
type SelectionOption struct {
	Label string    `json:"label"`
	Value Selection `json:"value"`
}

// SelectionOptions retorna as cinco opções do controle com seus rótulos
func SelectionOptions() []SelectionOption {
	options := make([]SelectionOption, 0, len(selections))
	for _, s := range selections {
		options = append(options, SelectionOption{Label: s.DisplayName(), Value: s})
	}
	return options
}
