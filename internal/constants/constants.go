package constants

// Order status constants.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCanceled  = "canceled"
	OrderStatusReturned  = "returned"
)

// Order line return status constants.
const (
	ReturnStatusNone     = "none"
	ReturnStatusPartial  = "partial"
	ReturnStatusReturned = "returned"
)

// Affiliate status constants.
const (
	AffiliateStatusActive    = "active"
	AffiliateStatusWarning   = "warning"
	AffiliateStatusSuspended = "suspended"
	AffiliateStatusRevoked   = "revoked"
)

// Affiliate discount type constants (product-level customer discount).
const (
	AffiliateDiscountTypeNone    = "none"
	AffiliateDiscountTypePercent = "percent"
	AffiliateDiscountTypeFixed   = "fixed"
)

// Affiliate commission type constants (product-level commission rule).
const (
	AffiliateCommissionTypePercent = "percent"
	AffiliateCommissionTypeFixed   = "fixed"
)

// Commission ledger status constants.
const (
	CommissionStatusPending = "pending"
	CommissionStatusPayable = "payable"
	CommissionStatusPaid    = "paid"
	CommissionStatusVoid    = "void"
)

// Parlour status constants.
const (
	ParlourStatusActive    = "active"
	ParlourStatusWarning   = "warning"
	ParlourStatusSuspended = "suspended"
)

// Queue constants.
const (
	QueueDefault          = "default"
	TaskOrderReceiptEmail = "email:order_receipt"
	TaskAdConversion      = "ads:conversion"
)

// Cache constants.
const (
	RedisPrefixDefault = "hc"
)

// Setting key constants.
const (
	SettingKeyAffiliateConfig = "affiliate_config"
	SettingKeyAdsConfig       = "ads_config"
)

// Referral cookie constants.
const (
	RefCookieName   = "aff_ref"
	RefCookieMaxAge = 30 * 24 * 3600
)

// Currency constants.
const (
	SiteCurrencyDefault = "PKR"
)

// Tier window: delivered-order counts are aggregated over a trailing window
// of this many days.
const TierWindowDays = 30
