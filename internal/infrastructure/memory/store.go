// Package memory implementa los puertos de persistencia en memoria.
// Se usa con STORAGE_DRIVER=memory (demos locales) y como doble de prueba de los casos de uso.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// Store agrupa las tablas en memoria; todos los repositorios comparten el mismo candado.
type Store struct {
	mu        sync.RWMutex
	products  map[string]entity.Product
	batches   map[string]entity.Batch
	orders    map[string]entity.PurchaseOrder
	movements map[string]entity.AccountingMovement
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		products:  make(map[string]entity.Product),
		batches:   make(map[string]entity.Batch),
		orders:    make(map[string]entity.PurchaseOrder),
		movements: make(map[string]entity.AccountingMovement),
	}
}

// Products devuelve el repositorio de productos.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// Batches devuelve el repositorio de lotes.
func (s *Store) Batches() *BatchRepo { return &BatchRepo{s: s} }

// PurchaseOrders devuelve el repositorio de órdenes.
func (s *Store) PurchaseOrders() *PurchaseOrderRepo { return &PurchaseOrderRepo{s: s} }

// Movements devuelve el repositorio de asientos.
func (s *Store) Movements() *MovementRepo { return &MovementRepo{s: s} }

// TxRunner serializa la función completa bajo el candado de escritura del almacén.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner.
func NewTxRunner(s *Store) *TxRunner { return &TxRunner{s: s} }

// Run ejecuta fn con repositorios que operan sin volver a tomar el candado.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	orderRepo repository.PurchaseOrderRepository,
	batchRepo repository.BatchRepository,
	movementRepo repository.AccountingMovementRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	locked := &Store{
		products:  r.s.products,
		batches:   r.s.batches,
		orders:    r.s.orders,
		movements: r.s.movements,
	}
	return fn(locked.Products(), locked.PurchaseOrders(), locked.Batches(), locked.Movements())
}
