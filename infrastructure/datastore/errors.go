package datastore

import (
	"errors"
	"fmt"
)

// Erros de carga da tabela de vendas. Todos impedem o servidor de subir
var (
	ErrSourceNotFound = errors.New("sales source not found")
	ErrMissingColumn  = errors.New("required column missing")
	ErrMalformedRow   = errors.New("malformed sales row")
	ErrUnreadable     = errors.New("sales source unreadable")
)

// StartupDataError é um erro de carga com a origem e a linha envolvidas
type StartupDataError struct {
	Err    error  // Erro base
	Source string // Arquivo, objeto ou tabela de origem
	Line   int    // Linha do arquivo (0 quando não se aplica)
}

// Error implementa a interface error
func (e *StartupDataError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s (line %d): %s", e.Source, e.Line, e.Err.Error())
	}
	return fmt.Sprintf("%s: %s", e.Source, e.Err.Error())
}

// Unwrap retorna o erro subjacente
func (e *StartupDataError) Unwrap() error {
	return e.Err
}

func newStartupDataError(err error, source string, line int) *StartupDataError {
	return &StartupDataError{Err: err, Source: source, Line: line}
}
