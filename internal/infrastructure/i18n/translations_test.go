package i18n

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"batepapo/internal/domain"
)

func TestTranslator_Locales(t *testing.T) {
	req := require.New(t)
	tr := NewTranslator("pt-BR", slog.Default())
	data := map[string]any{"Field": "name"}

	req.Equal(`"name" é obrigatório`, tr.T("", domain.TextValidationRequired, data))
	req.Equal(`"name" is required`, tr.T("en", domain.TextValidationRequired, data))
	req.Equal(`"name" is required`, tr.T("en-US,en;q=0.9", domain.TextValidationRequired, data))
}

func TestTranslator_Template(t *testing.T) {
	req := require.New(t)
	tr := NewTranslator("en", slog.Default())

	got := tr.T("", domain.TextValidationOneOf, map[string]any{"Field": "type", "Param": "message private_message"})
	req.Equal(`"type" must be one of [message private_message]`, got)
}

func TestTranslator_FallsBackToDefaultThenKey(t *testing.T) {
	req := require.New(t)
	tr := NewTranslator("pt-BR", slog.Default())

	req.Equal("o corpo da requisição deve ser um objeto JSON", tr.T("de", domain.TextValidationBody, nil))
	req.Equal("unknown.key", tr.T("en", "unknown.key", nil))
	req.Empty(tr.T("en", "", nil))
}

func TestTranslator_HasNoStatusTexts(t *testing.T) {
	req := require.New(t)
	tr := NewTranslator("en", slog.Default())

	req.Equal("status.join", tr.T("en", "status.join", nil))
}
