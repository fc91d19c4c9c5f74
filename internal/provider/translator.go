package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"qrorder/internal/domain"
)

// SupportedLanguages is the fixed language set the translation provider
// accepts. Unsupported targets are rejected here, before any network call.
var SupportedLanguages = map[string]string{
	"ko": "한국어",
	"en": "English",
	"zh": "中文",
	"ja": "日本語",
	"vi": "Tiếng Việt",
	"th": "ไทย",
}

type TranslatorClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTranslatorClient(baseURL string, timeout time.Duration) *TranslatorClient {
	return &TranslatorClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type translateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

type translateResponse struct {
	Original   string `json:"original"`
	Translated string `json:"translated"`
}

func (c *TranslatorClient) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if _, ok := SupportedLanguages[targetLang]; !ok {
		return "", domain.WrapError(domain.KindValidation,
			fmt.Errorf("%w: %s", domain.ErrUnsupportedLanguage, targetLang))
	}

	body, err := json.Marshal(translateRequest{
		Text:       text,
		SourceLang: sourceLang,
		TargetLang: targetLang,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/translate", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", domain.WrapError(domain.KindUpstream,
			fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", domain.WrapError(domain.KindUpstream,
			fmt.Errorf("%w: status %d", domain.ErrProviderUnavailable, resp.StatusCode))
	}

	var out translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", domain.WrapError(domain.KindUpstream,
			fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err))
	}
	return out.Translated, nil
}
