package cmd

import (
	"treats/internal/adapters/out/postgres"
	"treats/internal/adapters/out/postgres/catalogrepo"
	"treats/internal/core/application/usecases/commands"
	"treats/internal/core/application/usecases/queries"
	"treats/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	catalogRepo ports.CatalogRepository
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalogRepo: catalogrepo.NewGormCatalogRepository(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateDraftCommandHandler() commands.CreateDraftCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDraftCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateDraftCommandHandler() commands.UpdateDraftCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDraftCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitDraftCommandHandler() commands.SubmitDraftCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitDraftCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteDraftCommandHandler() commands.DeleteDraftCommandHandler {
	var f commands.DraftUoWFactory = FuncDraftUoWFactory(func() commands.DraftUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteDraftCommandHandler(f)
}

func (c *CompositionRoot) CreatePurgeAbandonedDraftsCommandHandler() commands.PurgeAbandonedDraftsCommandHandler {
	var f commands.DraftUoWFactory = FuncDraftUoWFactory(func() commands.DraftUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurgeAbandonedDraftsCommandHandler(f)
}

func (c *CompositionRoot) CreateListDraftsQueryHandler() queries.ListDraftsQueryHandler {
	return queries.NewListDraftsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDraftQueryHandler() queries.GetDraftQueryHandler {
	return queries.NewGetDraftQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDraftQuoteQueryHandler() queries.GetDraftQuoteQueryHandler {
	return queries.NewGetDraftQuoteQueryHandler(c.gormDB, c.catalogRepo)
}

func (c *CompositionRoot) CreateGetCatalogQueryHandler() queries.GetCatalogQueryHandler {
	return queries.NewGetCatalogQueryHandler(c.catalogRepo)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncDraftUoWFactory func() commands.DraftUoW

func (f FuncDraftUoWFactory) Create() commands.DraftUoW {
	return f()
}
