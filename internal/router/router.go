package router

import (
	"fmt"
	"strings"

	"github.com/husncart/husncart/internal/cache"
	"github.com/husncart/husncart/internal/config"
	adminhandlers "github.com/husncart/husncart/internal/http/handlers/admin"
	publichandlers "github.com/husncart/husncart/internal/http/handlers/public"
	"github.com/husncart/husncart/internal/logger"
	"github.com/husncart/husncart/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires all HTTP routes.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "hc"
	}
	redisClient := cache.Client()
	checkoutRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:checkout", redisPrefix),
		WindowSeconds: cfg.Security.CheckoutRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.CheckoutRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.CheckoutRateLimit.BlockSeconds,
	}
	adminLoginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.CheckoutRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.CheckoutRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.CheckoutRateLimit.BlockSeconds,
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// Referral landing, short by design so it fits on printed cards.
	r.GET("/r/:code", publicHandler.TrackReferral)

	apiV1 := r.Group("/api/v1")
	{
		apiV1.GET("/products", publicHandler.ListProducts)
		apiV1.GET("/products/:slug", publicHandler.GetProduct)
		apiV1.GET("/captcha", publicHandler.GetImageCaptcha)
		apiV1.POST("/orders", RateLimitMiddleware(redisClient, checkoutRule, KeyByIP), publicHandler.CreateOrder)
		apiV1.GET("/orders/:order_no", publicHandler.GetOrder)
		apiV1.POST("/parlour/quote", publicHandler.QuoteParlourPrice)

		admin := apiV1.Group("/admin")
		{
			admin.POST("/login", RateLimitMiddleware(redisClient, adminLoginRule, KeyByIPAndJSONField("username")), adminHandler.Login)

			authorized := admin.Group("")
			authorized.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo), AdminRBACMiddleware(c.AuthzService))
			{
				authorized.PUT("/password", adminHandler.ChangePassword)
				authorized.GET("/authz/me", adminHandler.GetAuthzMe)

				authorized.GET("/products", adminHandler.ListProducts)
				authorized.POST("/products", adminHandler.CreateProduct)
				authorized.GET("/products/:id", adminHandler.GetProduct)
				authorized.PUT("/products/:id", adminHandler.UpdateProduct)
				authorized.DELETE("/products/:id", adminHandler.DeleteProduct)
				authorized.GET("/products/:id/variants", adminHandler.ListVariants)
				authorized.POST("/products/:id/variants", adminHandler.CreateVariant)
				authorized.PUT("/variants/:id", adminHandler.UpdateVariant)
				authorized.DELETE("/variants/:id", adminHandler.DeleteVariant)

				authorized.GET("/orders", adminHandler.ListOrders)
				authorized.GET("/orders/:id", adminHandler.GetOrder)
				authorized.PATCH("/orders/:id/status", adminHandler.UpdateOrderStatus)

				authorized.GET("/affiliates", adminHandler.ListAffiliates)
				authorized.POST("/affiliates", adminHandler.CreateAffiliate)
				authorized.GET("/affiliates/:id", adminHandler.GetAffiliate)
				authorized.PUT("/affiliates/:id", adminHandler.UpdateAffiliate)
				authorized.PATCH("/affiliates/:id/status", adminHandler.UpdateAffiliateStatus)
				authorized.POST("/affiliates/:id/strikes", adminHandler.AddAffiliateStrike)

				authorized.GET("/commission-tiers", adminHandler.ListCommissionTiers)
				authorized.POST("/commission-tiers", adminHandler.CreateCommissionTier)
				authorized.GET("/commission-tiers/:id", adminHandler.GetCommissionTier)
				authorized.PUT("/commission-tiers/:id", adminHandler.UpdateCommissionTier)
				authorized.DELETE("/commission-tiers/:id", adminHandler.DeleteCommissionTier)

				authorized.GET("/commissions", adminHandler.ListCommissions)
				authorized.GET("/commissions/:id", adminHandler.GetCommission)
				authorized.POST("/commissions/:id/pay", adminHandler.PayCommission)
				authorized.POST("/commissions/:id/void", adminHandler.VoidCommission)

				authorized.GET("/shipping-rules", adminHandler.ListShippingRules)
				authorized.POST("/shipping-rules", adminHandler.CreateShippingRule)
				authorized.PUT("/shipping-rules/:id", adminHandler.UpdateShippingRule)
				authorized.DELETE("/shipping-rules/:id", adminHandler.DeleteShippingRule)

				authorized.GET("/parlours", adminHandler.ListParlours)
				authorized.POST("/parlours", adminHandler.CreateParlour)
				authorized.GET("/parlours/:id", adminHandler.GetParlour)
				authorized.PUT("/parlours/:id", adminHandler.UpdateParlour)
				authorized.PATCH("/parlours/:id/status", adminHandler.UpdateParlourStatus)
				authorized.POST("/parlours/:id/strikes", adminHandler.AddParlourStrike)
				authorized.GET("/parlour-tiers", adminHandler.ListParlourTiers)
				authorized.POST("/parlour-tiers", adminHandler.CreateParlourTier)
				authorized.PUT("/parlour-tiers/:id", adminHandler.UpdateParlourTier)
				authorized.DELETE("/parlour-tiers/:id", adminHandler.DeleteParlourTier)

				authorized.GET("/settings/:key", adminHandler.GetSetting)
				authorized.PUT("/settings/:key", adminHandler.UpdateSetting)

				authorized.GET("/authz/roles", adminHandler.ListAuthzRoles)
				authorized.POST("/authz/roles", adminHandler.CreateAuthzRole)
				authorized.DELETE("/authz/roles/:role", adminHandler.DeleteAuthzRole)
				authorized.GET("/authz/roles/:role/policies", adminHandler.GetAuthzRolePolicies)
				authorized.POST("/authz/policies", adminHandler.GrantAuthzPolicy)
				authorized.DELETE("/authz/policies", adminHandler.RevokeAuthzPolicy)
				authorized.GET("/authz/admins", adminHandler.ListAuthzAdmins)
				authorized.POST("/authz/admins", adminHandler.CreateAuthzAdmin)
				authorized.GET("/authz/admins/:id/roles", adminHandler.GetAuthzAdminRoles)
				authorized.PUT("/authz/admins/:id/roles", adminHandler.SetAuthzAdminRoles)
			}
		}
	}

	return r
}
