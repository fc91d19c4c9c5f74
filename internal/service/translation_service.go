package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"qrorder/internal/domain"
)

type TranslationService struct {
	store    TranslationRepository
	cache    TranslationCache
	provider TranslationProvider
}

func NewTranslationService(store TranslationRepository, cache TranslationCache, provider TranslationProvider) *TranslationService {
	return &TranslationService{
		store:    store,
		cache:    cache,
		provider: provider,
	}
}

// Resolve looks up the stored translation for (key, lang). A missing
// translation is reported as ok=false, never as another language's text:
// silently rendering a fallback language would mask missing-translation bugs.
func (s *TranslationService) Resolve(ctx context.Context, key, lang string) (string, bool, error) {
	if s.cache != nil {
		if text, hit, err := s.cache.Get(ctx, key, lang); err == nil && hit {
			return text, true, nil
		}
	}

	tr, err := s.store.GetTranslation(ctx, key, lang)
	if err != nil {
		return "", false, err
	}
	if tr == nil {
		return "", false, nil
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, key, lang, tr.Text)
	}
	return tr.Text, true, nil
}

// TranslateText is best-effort: when the provider fails the original text
// comes back unchanged so the surrounding feature keeps working.
func (s *TranslationService) TranslateText(ctx context.Context, text, targetLang string) string {
	translated, err := s.provider.Translate(ctx, text, "ko", targetLang)
	if err != nil {
		log.Printf("[translation-svc] translate failed, returning original: %v", err)
		return text
	}
	return translated
}

// TranslateBatch sends all items as one provider call in "idx:text" line
// format and re-associates results by id. Lines the provider mangles are
// dropped, so the result may be shorter than the input.
func (s *TranslationService) TranslateBatch(ctx context.Context, items []domain.BatchItem, sourceLang, targetLang string) ([]domain.BatchTranslation, error) {
	if len(items) == 0 {
		return nil, nil
	}

	numbered := make([]string, 0, len(items))
	for idx, item := range items {
		numbered = append(numbered, fmt.Sprintf("%d:%s", idx, item.Text))
	}

	translated, err := s.provider.Translate(ctx, strings.Join(numbered, "\n"), sourceLang, targetLang)
	if err != nil {
		return nil, domain.WrapError(domain.KindUpstream, err)
	}

	var results []domain.BatchTranslation
	for _, line := range strings.Split(translated, "\n") {
		idxStr, text, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		idx, err := strconv.Atoi(strings.TrimSpace(idxStr))
		if err != nil || idx < 0 || idx >= len(items) {
			continue
		}
		results = append(results, domain.BatchTranslation{
			ID:         items[idx].ID,
			Original:   items[idx].Text,
			Translated: strings.TrimSpace(text),
		})
	}
	return results, nil
}

func (s *TranslationService) Upsert(ctx context.Context, key, lang, text string) (*domain.Translation, error) {
	if key == "" || lang == "" || text == "" {
		return nil, domain.WrapError(domain.KindValidation,
			fmt.Errorf("key, language code and text are required"))
	}
	tr, err := s.store.UpsertTranslation(ctx, key, lang, text)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, lang, text)
	}
	return tr, nil
}

func (s *TranslationService) ListKeyTranslations(ctx context.Context, key string) ([]domain.Translation, error) {
	return s.store.ListKeyTranslations(ctx, key)
}

var _ TranslationServiceInterface = (*TranslationService)(nil)
