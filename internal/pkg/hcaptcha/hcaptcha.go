package hcaptcha

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/waveforge/waveforge/internal/pkg/env"
)

const verifyEndpoint = "https://hcaptcha.com/siteverify"

// httpClient is shared across verifications; the contact endpoint must not
// hang on a slow captcha backend.
var httpClient = &http.Client{Timeout: 10 * time.Second}

type verifyResponse struct {
	Success     bool     `json:"success"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes"`
}

// Verify checks a client captcha token against the hCaptcha API using the
// secret from HCAPTCHA_SECRET.
func Verify(token string) (bool, error) {
	if token == "" {
		return false, fmt.Errorf("captcha token is empty")
	}

	secret := env.GetEnv("HCAPTCHA_SECRET", "")
	if secret == "" {
		return false, fmt.Errorf("HCAPTCHA_SECRET is not set")
	}

	form := url.Values{
		"secret":   {secret},
		"response": {token},
	}

	resp, err := httpClient.PostForm(verifyEndpoint, form)
	if err != nil {
		return false, fmt.Errorf("captcha verification request failed: %w", err)
	}
	defer resp.Body.Close()

	var result verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("failed to decode captcha verification response: %w", err)
	}

	if !result.Success {
		if len(result.ErrorCodes) > 0 {
			return false, fmt.Errorf("captcha validation failed: %s", strings.Join(result.ErrorCodes, ", "))
		}
		return false, fmt.Errorf("captcha validation failed")
	}

	return true, nil
}
