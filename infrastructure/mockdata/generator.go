package mockdata

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/vfg2006/tradelite-api/infrastructure/referencedata"
)

// Generator produz os registros sintéticos consumidos pelos serviços. Todos os
// sorteios passam pelo mesmo *rand.Rand protegido por mutex, de modo que uma
// semente fixa reproduz a mesma sequência de respostas.
type Generator struct {
	mu      sync.Mutex
	rand    *rand.Rand
	catalog *referencedata.Catalog
	now     func() time.Time
}

// New cria o gerador. Semente zero usa o relógio, como em produção.
func New(catalog *referencedata.Catalog, seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		rand:    rand.New(rand.NewSource(seed)),
		catalog: catalog,
		now:     time.Now,
	}
}

// Intn expõe o sorteio bruto para quem só precisa de inteiros
func (g *Generator) Intn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rand.Intn(n)
}

// Os helpers abaixo supõem o mutex já travado pelo método público que os chama.

func (g *Generator) between(lo, hi int) int {
	return lo + g.rand.Intn(hi-lo+1)
}

func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rand.Float64()*(hi-lo)
}

func (g *Generator) price(lo, hi float64) float64 {
	return roundCents(g.uniform(lo, hi))
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func (g *Generator) chance(p float64) bool {
	return g.rand.Float64() < p
}

func (g *Generator) coin() bool {
	return g.rand.Intn(2) == 1
}

func (g *Generator) recordID() int {
	return g.between(1000, 9999)
}

func (g *Generator) hoursAgo(now time.Time, lo, hi int) time.Time {
	return now.Add(-time.Duration(g.between(lo, hi)) * time.Hour)
}

func (g *Generator) hoursAhead(now time.Time, lo, hi int) time.Time {
	return now.Add(time.Duration(g.between(lo, hi)) * time.Hour)
}

func (g *Generator) daysAgo(now time.Time, lo, hi int) time.Time {
	return now.AddDate(0, 0, -g.between(lo, hi))
}

func pick[T any](g *Generator, items []T) T {
	return items[g.rand.Intn(len(items))]
}

// sample sorteia n itens distintos sem alterar a fatia original
func sample[T any](g *Generator, items []T, n int) []T {
	n = min(n, len(items))
	pool := append([]T(nil), items...)
	for i := 0; i < n; i++ {
		j := i + g.rand.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

func (g *Generator) RecordID() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.recordID()
}

func (g *Generator) TicketNumber() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.between(100, 999)
}
