package storage

import (
	"context"
	"database/sql"

	"qrorder/internal/domain"
)

// GetTranslation looks up the exact (key, language) row; a miss is (nil, nil),
// never a different language's row.
func (r *PostgresRepository) GetTranslation(ctx context.Context, key, lang string) (*domain.Translation, error) {
	var tr domain.Translation
	err := r.DB.QueryRowContext(ctx, `
		SELECT t.id, t.key_id, tk.key, t.language_code, t.text
		FROM translations t
		JOIN translation_keys tk ON t.key_id = tk.id
		WHERE tk.key = $1 AND t.language_code = $2`, key, lang).
		Scan(&tr.ID, &tr.KeyID, &tr.Key, &tr.LanguageCode, &tr.Text)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tr, nil
}

// UpsertTranslation creates the key on first use and relies on the
// (key_id, language_code) unique constraint to collapse concurrent writers
// onto a single row.
func (r *PostgresRepository) UpsertTranslation(ctx context.Context, key, lang, text string) (*domain.Translation, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var keyID int
	err = tx.QueryRowContext(ctx, `
		INSERT INTO translation_keys (key)
		VALUES ($1)
		ON CONFLICT (key) DO UPDATE SET key = EXCLUDED.key
		RETURNING id`, key).Scan(&keyID)
	if err != nil {
		return nil, err
	}

	var tr domain.Translation
	err = tx.QueryRowContext(ctx, `
		INSERT INTO translations (key_id, language_code, text)
		VALUES ($1, $2, $3)
		ON CONFLICT (key_id, language_code) DO UPDATE SET text = EXCLUDED.text, updated_at = now()
		RETURNING id, key_id, language_code, text`,
		keyID, lang, text).
		Scan(&tr.ID, &tr.KeyID, &tr.LanguageCode, &tr.Text)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	tr.Key = key
	return &tr, nil
}

func (r *PostgresRepository) ListKeyTranslations(ctx context.Context, key string) ([]domain.Translation, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT t.id, t.key_id, tk.key, t.language_code, t.text
		FROM translations t
		JOIN translation_keys tk ON t.key_id = tk.id
		WHERE tk.key = $1
		ORDER BY t.language_code`, key)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var translations []domain.Translation
	for rows.Next() {
		var tr domain.Translation
		if err := rows.Scan(&tr.ID, &tr.KeyID, &tr.Key, &tr.LanguageCode, &tr.Text); err != nil {
			return nil, err
		}
		translations = append(translations, tr)
	}
	return translations, rows.Err()
}
