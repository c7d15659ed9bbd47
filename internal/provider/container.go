package provider

import (
	"github.com/husncart/husncart/internal/authz"
	"github.com/husncart/husncart/internal/cache"
	"github.com/husncart/husncart/internal/config"
	"github.com/husncart/husncart/internal/logger"
	"github.com/husncart/husncart/internal/models"
	"github.com/husncart/husncart/internal/queue"
	"github.com/husncart/husncart/internal/repository"
	"github.com/husncart/husncart/internal/service"
)

// Container wires repositories and services together.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo        repository.AdminRepository
	AffiliateRepo    repository.AffiliateRepository
	TierRepo         repository.CommissionTierRepository
	CommissionRepo   repository.CommissionRepository
	ProductRepo      repository.ProductRepository
	VariantRepo      repository.VariantRepository
	OrderRepo        repository.OrderRepository
	ShippingRuleRepo repository.ShippingRuleRepository
	ParlourRepo      repository.ParlourRepository
	SettingRepo      repository.SettingRepository

	// Services
	AuthzService      *authz.Service
	AuthService       *service.AuthService
	EmailService      *service.EmailService
	CaptchaService    *service.CaptchaService
	SettingService    *service.SettingService
	AffiliateService  *service.AffiliateService
	TierService       *service.TierService
	PricingService    *service.PricingService
	ShippingService   *service.ShippingService
	ProductService    *service.ProductService
	OrderService      *service.OrderService
	CommissionService *service.CommissionService
	ParlourService    *service.ParlourService
	AdsService        *service.AdsService
}

// NewContainer builds the container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.AffiliateRepo = repository.NewAffiliateRepository(db)
	c.TierRepo = repository.NewCommissionTierRepository(db)
	c.CommissionRepo = repository.NewCommissionRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.VariantRepo = repository.NewVariantRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.ShippingRuleRepo = repository.NewShippingRuleRepository(db)
	c.ParlourRepo = repository.NewParlourRepository(db)
	c.SettingRepo = repository.NewSettingRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.SettingService = service.NewSettingService(c.SettingRepo)
	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.CaptchaService = service.NewCaptchaService(c.Config.Checkout)
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.AffiliateService = service.NewAffiliateService(c.AffiliateRepo, c.CommissionRepo)
	c.TierService = service.NewTierService(c.TierRepo, c.OrderRepo)
	c.PricingService = service.NewPricingService(c.ProductRepo, c.VariantRepo)
	c.ShippingService = service.NewShippingService(c.ShippingRuleRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.VariantRepo)
	c.OrderService = service.NewOrderService(
		c.OrderRepo,
		c.CommissionRepo,
		c.AffiliateService,
		c.TierService,
		c.PricingService,
		c.ShippingService,
		c.SettingService,
		c.QueueClient,
		c.Config.Order.Currency,
		c.Config.Order.CommissionHoldDays,
	)
	c.CommissionService = service.NewCommissionService(c.CommissionRepo)
	c.ParlourService = service.NewParlourService(c.ParlourRepo, c.VariantRepo)
	c.AdsService = service.NewAdsService(&c.Config.Ads, c.SettingService)
}
