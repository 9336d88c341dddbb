package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"souq/internal/domain/entity"
	"souq/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalogUsecase struct {
	filters []entity.AttributeDefinition
}

func (s *stubCatalogUsecase) ResolveFilters(_ context.Context, _ uuid.UUID) ([]entity.AttributeDefinition, error) {
	return s.filters, nil
}

func (s *stubCatalogUsecase) ReplaceAttributes(_ context.Context, _ uuid.UUID, _ *usecase.ReplaceAttributesInput) (*entity.Category, error) {
	return nil, nil
}

func TestCatalogHandler_ResolveFilters_EnvelopeShape(t *testing.T) {
	uc := &stubCatalogUsecase{
		filters: []entity.AttributeDefinition{
			{Key: "brand", Label: "Brand", Type: entity.AttributeTypeSelect, Options: []string{"Apple"}, Order: 1},
		},
	}
	handler := NewCatalogHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("categoryId")
	c.SetParamValues(uuid.NewString())

	require.NoError(t, handler.ResolveFilters(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status string `json:"status"`
		Data   struct {
			Attributes []entity.AttributeDefinition `json:"attributes"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "success", body.Status)
	require.Len(t, body.Data.Attributes, 1)
	assert.Equal(t, "brand", body.Data.Attributes[0].Key)
}

func TestCatalogHandler_ResolveFilters_EmptySetIsEmptyArray(t *testing.T) {
	handler := NewCatalogHandler(&stubCatalogUsecase{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("categoryId")
	c.SetParamValues(uuid.NewString())

	require.NoError(t, handler.ResolveFilters(c))

	assert.JSONEq(t,
		`{"status":"success","data":{"attributes":[]}}`,
		rec.Body.String(),
	)
}
