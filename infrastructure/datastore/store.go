package datastore

import (
	"sort"
	"strings"

	"github.com/vfg2006/sales-visualiser/internal/domain"
)

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// RecordStore é a visão somente leitura da tabela de vendas
type RecordStore interface {
	AllRecords() []domain.SalesRecord
}

// Store guarda os registros carregados na inicialização. Nunca é alterado
// depois de construído, então pode ser compartilhado sem locks
type Store struct {
	source         string
	records        []domain.SalesRecord
	unknownRegions map[string]int
}

// New cria um Store a partir de registros já carregados
func New(source string, records []domain.SalesRecord) *Store {
	unknown := make(map[string]int)
	for _, r := range records {
		if !domain.IsKnownRegion(r.Region) {
			unknown[strings.ToLower(strings.TrimSpace(r.Region))]++
		}
	}

	return &Store{
		source:         source,
		records:        records,
		unknownRegions: unknown,
	}
}

// AllRecords retorna a coleção carregada, sem cópia e sem reprocessamento.
// Quem chama não deve alterar o slice
func (s *Store) AllRecords() []domain.SalesRecord {
	return s.records
}

// Source identifica de onde os registros vieram
func (s *Store) Source() string {
	return s.source
}

// Len retorna o número de registros
func (s *Store) Len() int {
	return len(s.records)
}

// UnknownRegions retorna as regiões que não correspondem a nenhum filtro,
// com a quantidade de registros de cada uma, em ordem alfabética
func (s *Store) UnknownRegions() []RegionCount {
	out := make([]RegionCount, 0, len(s.unknownRegions))
	for region, count := range s.unknownRegions {
		out = append(out, RegionCount{Region: region, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Region < out[j].Region })
	return out
}

type RegionCount struct {
	Region string
	Count  int
}
