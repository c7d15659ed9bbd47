package service

import "errors"

// Order errors.
var (
	ErrEmptyOrder          = errors.New("order has no valid line items")
	ErrInvalidOrderItem    = errors.New("invalid line item")
	ErrInvalidCustomer     = errors.New("missing required customer fields")
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderStatusInvalid  = errors.New("order status transition not allowed")
	ErrInvalidOrderRequest = errors.New("invalid order request")
)

// Catalog errors.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductInvalid  = errors.New("invalid product data")
	ErrVariantNotFound = errors.New("variant not found")
	ErrVariantInvalid  = errors.New("invalid variant data")
	ErrVariantSKUTaken = errors.New("variant sku already in use")
	ErrSlugTaken       = errors.New("product slug already in use")
)

// Affiliate errors.
var (
	ErrAffiliateNotFound      = errors.New("affiliate not found")
	ErrAffiliateInvalid       = errors.New("invalid affiliate data")
	ErrAffiliateStatusInvalid = errors.New("invalid affiliate status")
	ErrAffiliateCodeTaken     = errors.New("referral code already in use")
	ErrAffiliateCodeIssue     = errors.New("generate referral code failed")
)

// Tier errors.
var (
	ErrTierInvalid          = errors.New("invalid tier data")
	ErrTierNotFound         = errors.New("commission tier not found")
	ErrTierDefaultProtected = errors.New("default commission tier cannot be removed")
)

// Shipping errors.
var (
	ErrShippingRuleNotFound = errors.New("shipping rule not found")
	ErrShippingRuleInvalid  = errors.New("invalid shipping rule data")
)

// Commission ledger errors.
var (
	ErrCommissionNotFound      = errors.New("commission not found")
	ErrCommissionStatusInvalid = errors.New("commission status transition not allowed")
)

// Parlour errors.
var (
	ErrParlourNotFound      = errors.New("parlour not found")
	ErrParlourInvalid       = errors.New("invalid parlour data")
	ErrParlourPhoneTaken    = errors.New("parlour phone already registered")
	ErrParlourStatusInvalid = errors.New("invalid parlour status")
	ErrParlourSuspended     = errors.New("parlour is suspended")
	ErrParlourTierNotFound  = errors.New("parlour pricing tier not found")
	ErrParlourTierInvalid   = errors.New("invalid parlour pricing tier data")
)

// Auth errors.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrCaptchaRequired    = errors.New("captcha required")
	ErrCaptchaInvalid     = errors.New("captcha verification failed")
)

// Email errors.
var (
	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
	ErrInvalidEmail              = errors.New("invalid email address")
	ErrEmailRecipientRejected    = errors.New("email recipient rejected")
)
