package utils

import "sync/atomic"

// SequenceGuard protege listagens contra respostas fora de ordem: buscas
// concorrentes recebem tickets monotônicos e apenas o resultado do ticket
// mais recente deve ser aplicado. Substitui o comportamento original em que
// uma busca lenta podia sobrescrever o resultado de uma mais nova.
type SequenceGuard struct {
	counter atomic.Uint64
}

// Next emite um novo ticket, tornando-o o mais recente
func (g *SequenceGuard) Next() uint64 {
	return g.counter.Add(1)
}

// Latest informa se o ticket ainda é o mais recente emitido
func (g *SequenceGuard) Latest(ticket uint64) bool {
	return g.counter.Load() == ticket
}
