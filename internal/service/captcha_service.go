package service

import (
	"strings"
	"sync"
	"time"

	"github.com/husncart/husncart/internal/config"

	"github.com/mojocn/base64Captcha"
)

const (
	captchaStoreMax       = 10240
	captchaStoreExpireSec = 300
)

// CaptchaVerifyPayload is the checkout captcha payload.
type CaptchaVerifyPayload struct {
	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

// CaptchaImageChallenge is an issued image challenge.
type CaptchaImageChallenge struct {
	CaptchaID   string `json:"captcha_id"`
	ImageBase64 string `json:"image_base64"`
}

// CaptchaService issues and verifies checkout image captchas.
type CaptchaService struct {
	cfg config.CheckoutConfig

	mu         sync.Mutex
	imageStore base64Captcha.Store
}

// NewCaptchaService creates the captcha service.
func NewCaptchaService(cfg config.CheckoutConfig) *CaptchaService {
	return &CaptchaService{cfg: cfg}
}

// Enabled reports whether checkout captcha verification is on.
func (s *CaptchaService) Enabled() bool {
	return s != nil && s.cfg.CaptchaEnabled
}

// GenerateImageChallenge issues a new image captcha.
func (s *CaptchaService) GenerateImageChallenge() (*CaptchaImageChallenge, error) {
	length := s.cfg.CaptchaLength
	if length <= 0 {
		length = 5
	}
	width := s.cfg.CaptchaWidth
	if width <= 0 {
		width = 240
	}
	height := s.cfg.CaptchaHeight
	if height <= 0 {
		height = 80
	}

	driver := base64Captcha.NewDriverString(
		height,
		width,
		2,
		2,
		length,
		"0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ",
		nil,
		base64Captcha.DefaultEmbeddedFonts,
		nil,
	)
	captcha := base64Captcha.NewCaptcha(driver, s.ensureStore())
	id, b64s, _, err := captcha.Generate()
	if err != nil {
		return nil, err
	}

	return &CaptchaImageChallenge{
		CaptchaID:   strings.TrimSpace(id),
		ImageBase64: strings.TrimSpace(b64s),
	}, nil
}

// Verify checks a checkout captcha answer. A no-op when the feature is off.
func (s *CaptchaService) Verify(payload CaptchaVerifyPayload) error {
	if !s.Enabled() {
		return nil
	}
	captchaID := strings.TrimSpace(payload.CaptchaID)
	captchaCode := strings.TrimSpace(payload.CaptchaCode)
	if captchaID == "" || captchaCode == "" {
		return ErrCaptchaRequired
	}
	if !s.ensureStore().Verify(captchaID, captchaCode, true) {
		return ErrCaptchaInvalid
	}
	return nil
}

func (s *CaptchaService) ensureStore() base64Captcha.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.imageStore == nil {
		s.imageStore = base64Captcha.NewMemoryStore(captchaStoreMax, captchaStoreExpireSec*time.Second)
	}
	return s.imageStore
}
