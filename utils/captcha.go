package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

var captchaClient = &http.Client{Timeout: 10 * time.Second}

// VerifyCaptcha checks a challenge token against the configured provider.
// When CAPTCHA_SECRET is unset the check is disabled. Any transport or
// provider error fails closed: the submission is blocked, not waved through.
func VerifyCaptcha(token string) error {
	secret := os.Getenv("CAPTCHA_SECRET")
	if secret == "" {
		return nil
	}
	if token == "" {
		return fmt.Errorf("captcha token missing")
	}

	endpoint := os.Getenv("CAPTCHA_VERIFY_URL")
	if endpoint == "" {
		endpoint = "https://hcaptcha.com/siteverify"
	}

	resp, err := captchaClient.PostForm(endpoint, url.Values{
		"secret":   {secret},
		"response": {token},
	})
	if err != nil {
		return fmt.Errorf("captcha verification failed: %v", err)
	}
	defer resp.Body.Close()

	var result struct {
		Success    bool     `json:"success"`
		ErrorCodes []string `json:"error-codes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("captcha verification failed: %v", err)
	}
	if !result.Success {
		return fmt.Errorf("captcha rejected: %s", strings.Join(result.ErrorCodes, ", "))
	}
	return nil
}
