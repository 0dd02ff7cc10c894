// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"errors"

	"github.com/vfg2006/tradelite-api/infrastructure/database/postgres"
	"github.com/vfg2006/tradelite-api/internal/config"
)

var ErrNotFound = errors.New("registro não encontrado")

// Repositories agrupa os repositórios com estado da aplicação
type Repositories struct {
	Tickets TicketRepository
	Prices  PriceRecordRepository
}

// New escolhe a implementação conforme STORAGE_DRIVER. Com postgres, conn é obrigatório.
func New(driver string, conn postgres.Conn) (*Repositories, error) {
	switch driver {
	case config.StoragePostgres:
		if conn == nil {
			return nil, errors.New("conexão com o banco é obrigatória para o driver postgres")
		}
		return &Repositories{
			Tickets: NewTicketRepository(conn),
			Prices:  NewPriceRecordRepository(conn),
		}, nil
	default:
		return &Repositories{
			Tickets: NewMemoryTicketRepository(),
			Prices:  NewMemoryPriceRecordRepository(),
		}, nil
	}
}
