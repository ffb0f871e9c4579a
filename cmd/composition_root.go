package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpadapter "grocery/internal/adapters/in/http"
	"grocery/internal/adapters/out/postgres"
	"grocery/internal/adapters/out/postgres/auditrepo"
	"grocery/internal/adapters/out/postgres/configrepo"
	"grocery/internal/adapters/out/redisnotify"
	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/application/usecases/queries"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/ports"
	"grocery/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const defaultReturnCode = "SABZI_RETURN_2026"

type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	auditLog    ports.AuditLog
	notifier    ports.Notifier
	returnCodes ports.ReturnCodeStore
	logger      *slog.Logger

	pickerClaimJob *jobs.PickerClaimJob
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient *redis.Client, logger *slog.Logger) CompositionRoot {
	returnCode := config.StoreReturnCode
	if returnCode == "" {
		returnCode = defaultReturnCode
	}

	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		auditLog:    auditrepo.NewGormAuditLog(gormDB, logger),
		notifier:    redisnotify.NewNotifier(redisClient, logger),
		returnCodes: configrepo.NewGormReturnCodeStore(gormDB, returnCode),
		logger:      logger,
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.auditLog, c.notifier)
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClaimOrderCommandHandler(f, c.auditLog)
}

func (c *CompositionRoot) CreateTransitionOrderStatusCommandHandler() commands.TransitionOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderStatusCommandHandler(f, c.auditLog)
}

func (c *CompositionRoot) CreateRecordFulfillmentCommandHandler() commands.RecordFulfillmentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordFulfillmentCommandHandler(f, c.auditLog)
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmPaymentCommandHandler(f, c.auditLog)
}

func (c *CompositionRoot) CreateCreateTripCommandHandler() commands.CreateTripCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTripCommandHandler(f, c.auditLog, c.notifier)
}

func (c *CompositionRoot) CreateCheckTripCompletionCommandHandler() commands.CheckTripCompletionCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckTripCompletionCommandHandler(f, c.auditLog)
}

func (c *CompositionRoot) CreateCloseTripCommandHandler() commands.CloseTripCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCloseTripCommandHandler(f, c.returnCodes, c.auditLog)
}

func (c *CompositionRoot) CreateSetPartnerShiftCommandHandler() commands.SetPartnerShiftCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetPartnerShiftCommandHandler(f, c.auditLog)
}

func (c *CompositionRoot) CreateAddProductCommandHandler() commands.AddProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddProductCommandHandler(f, c.auditLog)
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProductCommandHandler(f, c.auditLog)
}

func (c *CompositionRoot) CreateRemoveProductCommandHandler() commands.RemoveProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveProductCommandHandler(f, c.auditLog)
}

func (c *CompositionRoot) CreateGetActiveOrderQueryHandler() queries.GetActiveOrderQueryHandler {
	return queries.NewGetActiveOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardCountsQueryHandler() queries.GetDashboardCountsQueryHandler {
	return queries.NewGetDashboardCountsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPackedOrdersQueryHandler() queries.GetPackedOrdersQueryHandler {
	return queries.NewGetPackedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailablePartnersQueryHandler() queries.GetAvailablePartnersQueryHandler {
	return queries.NewGetAvailablePartnersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAuditLogsQueryHandler() queries.GetAuditLogsQueryHandler {
	return queries.NewGetAuditLogsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCatalogQueryHandler() queries.GetCatalogQueryHandler {
	return queries.NewGetCatalogQueryHandler(c.gormDB)
}

// PickerClaimJob returns the shared claim job instance. The HTTP server
// registers pickers on it and the job manager runs it, so both sides must
// see the same rotation.
func (c *CompositionRoot) PickerClaimJob() *jobs.PickerClaimJob {
	if c.pickerClaimJob == nil {
		c.pickerClaimJob = jobs.NewPickerClaimJob(c.CreateClaimOrderCommandHandler(), c.notifyClaim, c.logger)
	}
	return c.pickerClaimJob
}

// notifyClaim pushes a successful claim to the picker notification channel.
func (c *CompositionRoot) notifyClaim(pickerID kernel.UUID, claimed *order.Order) {
	c.notifier.Notify(context.Background(), "Picker",
		fmt.Sprintf("Order %s assigned to picker %s", claimed.ID(), pickerID))
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	tripCompletionJob := jobs.NewTripCompletionJob(
		c.CreateCheckTripCompletionCommandHandler(),
		c.uowFactory.Create().TripRepository(),
		c.logger,
	)
	return jobs.NewJobManager(c.PickerClaimJob(), tripCompletionJob)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreatePlaceOrderCommandHandler(),
		c.CreateTransitionOrderStatusCommandHandler(),
		c.CreateRecordFulfillmentCommandHandler(),
		c.CreateConfirmPaymentCommandHandler(),
		c.CreateCreateTripCommandHandler(),
		c.CreateCloseTripCommandHandler(),
		c.CreateSetPartnerShiftCommandHandler(),
		c.CreateAddProductCommandHandler(),
		c.CreateUpdateProductCommandHandler(),
		c.CreateRemoveProductCommandHandler(),
		c.PickerClaimJob(),
		c.CreateGetActiveOrderQueryHandler(),
		c.CreateGetDashboardCountsQueryHandler(),
		c.CreateGetPackedOrdersQueryHandler(),
		c.CreateGetAvailablePartnersQueryHandler(),
		c.CreateGetAuditLogsQueryHandler(),
		c.CreateGetCatalogQueryHandler(),
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPartnerUoWFactory func() commands.PartnerUoW

func (f FuncPartnerUoWFactory) Create() commands.PartnerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}
