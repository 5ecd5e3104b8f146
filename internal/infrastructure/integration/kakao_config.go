package integration

import (
	"errors"
	"time"
)

// KakaoConfig holds the Kakao Local REST API settings
type KakaoConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Validate checks that the configuration is usable
func (c *KakaoConfig) Validate() error {
	if c.APIKey == "" {
		return errors.New("kakao api key is required")
	}
	if c.BaseURL == "" {
		return errors.New("kakao base url is required")
	}
	if c.Timeout <= 0 {
		return errors.New("kakao timeout must be positive")
	}
	return nil
}
