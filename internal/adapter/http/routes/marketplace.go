package routes

import (
	"github.com/gin-gonic/gin"

	"obralink/internal/adapter/http/handlers"
	"obralink/internal/adapter/http/middleware"
	"obralink/internal/domain/entities"
)

const (
	PathAuth     = "/auth"
	PathState    = "/state"
	PathServices = "/services"
	PathQuotes   = "/quotes"
	PathSupplies = "/supplies"
	PathPacks    = "/packs"
)

func addMarketplaceRoutes(
	rg *gin.RouterGroup,
	secret []byte,
	authHandler *handlers.AuthHandler,
	serviceHandler *handlers.ServiceHandler,
	quoteHandler *handlers.QuoteHandler,
	supplyHandler *handlers.SupplyHandler,
	packHandler *handlers.PackHandler,
	stateHandler *handlers.StateHandler,
) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", authHandler.Login)
	}

	authed := rg.Group("", middleware.RequireAuth(secret))

	authed.GET(PathState, stateHandler.GetState)

	services := authed.Group(PathServices)
	{
		services.GET("", serviceHandler.ListServices)
		services.GET("/:id", serviceHandler.GetService)
		services.GET("/:id/quotes", quoteHandler.CompareQuotes)
		services.POST("", middleware.RequireRoles(entities.RoleRequester), serviceHandler.CreateService)
		services.PATCH("/:id", middleware.RequireRoles(entities.RoleRequester), serviceHandler.UpdateService)
		services.DELETE("/:id", middleware.RequireRoles(entities.RoleRequester), serviceHandler.DeleteService)
		// The PUBLISHED -> ASSIGNED transition.
		services.POST("/:id/selection", middleware.RequireRoles(entities.RoleRequester), serviceHandler.SelectQuote)
	}

	quotes := authed.Group(PathQuotes)
	{
		quotes.GET("", quoteHandler.ListMyQuotes)
		quotes.POST("", middleware.RequireRoles(entities.RoleServiceProvider), quoteHandler.SubmitQuote)
		quotes.PATCH("/:id", middleware.RequireRoles(entities.RoleServiceProvider), quoteHandler.UpdateQuote)
		// Administrative cleanup; the mobile client never calls this.
		quotes.DELETE("/:id", quoteHandler.DeleteQuote)
	}

	supplies := authed.Group(PathSupplies)
	{
		supplies.GET("", supplyHandler.ListSupplies)
		supplies.GET("/:id", supplyHandler.GetSupply)
		supplies.POST("", middleware.RequireRoles(entities.RoleSupplyProvider), supplyHandler.CreateSupply)
		supplies.PATCH("/:id", middleware.RequireRoles(entities.RoleSupplyProvider), supplyHandler.UpdateSupply)
		supplies.DELETE("/:id", middleware.RequireRoles(entities.RoleSupplyProvider), supplyHandler.DeleteSupply)
	}

	packs := authed.Group(PathPacks)
	{
		packs.GET("", packHandler.ListPacks)
		packs.GET("/:id", packHandler.GetPack)
		packs.POST("", middleware.RequireRoles(entities.RoleSupplyProvider), packHandler.CreatePack)
		packs.PATCH("/:id", middleware.RequireRoles(entities.RoleSupplyProvider), packHandler.UpdatePack)
		packs.DELETE("/:id", middleware.RequireRoles(entities.RoleSupplyProvider), packHandler.DeletePack)
	}
}
