package cmd

import (
	"fmt"

	"warehouse/internal/adapters/out/memory"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/stock"
)

// CompositionRoot wires the application: it owns the store and hands out
// command and query handlers bound to it.
type CompositionRoot struct {
	store      *memory.Store
	uowFactory *memory.UnitOfWorkFactory
}

// NewCompositionRoot builds the warehouse state from the config: a ledger
// with the configured threshold and alert capacity, seeded with the
// configured batch, behind an in-memory store.
func NewCompositionRoot(config Config) (CompositionRoot, error) {
	ledger, err := stock.NewLedger(config.LowStockThreshold, config.AlertLogCapacity)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to create ledger: %w", err)
	}

	if config.SeedBatch != "" {
		if notices := ledger.AddBatch(config.SeedBatch); len(notices) > 0 {
			return CompositionRoot{}, fmt.Errorf("invalid seed batch: %s", notices[0])
		}
	}

	store, err := memory.NewStore(ledger)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to create store: %w", err)
	}

	return CompositionRoot{
		store:      store,
		uowFactory: memory.NewUnitOfWorkFactory(store),
	}, nil
}

func (c *CompositionRoot) CreateAddStockCommandHandler() commands.AddStockCommandHandler {
	var f commands.LedgerUoWFactory = FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddStockCommandHandler(f)
}

func (c *CompositionRoot) CreatePackOrderCommandHandler() commands.PackOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPackOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetInventoryQueryHandler() queries.GetInventoryQueryHandler {
	return queries.NewGetInventoryQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetPackedParcelsQueryHandler() queries.GetPackedParcelsQueryHandler {
	return queries.NewGetPackedParcelsQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetAlertLogQueryHandler() queries.GetAlertLogQueryHandler {
	return queries.NewGetAlertLogQueryHandler(c.store)
}

type FuncLedgerUoWFactory func() commands.LedgerUoW

func (f FuncLedgerUoWFactory) Create() commands.LedgerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
