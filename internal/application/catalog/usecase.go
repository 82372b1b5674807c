// Package catalog implementa el Catalog Store: búsqueda por código, alta idempotente
// y reemplazo total desde un archivo de importación.
package catalog

import (
	"context"
	"strings"

	"github.com/jhoicas/fast-api/internal/domain"
	"github.com/jhoicas/fast-api/internal/domain/entity"
	"github.com/jhoicas/fast-api/internal/domain/report"
	"github.com/jhoicas/fast-api/internal/domain/repository"
	"github.com/jhoicas/fast-api/pkg/logger"
	"github.com/jhoicas/fast-api/pkg/metrics"
)

// Columnas requeridas en un archivo de importación.
const (
	ColumnCode        = "codigo"
	ColumnDescription = "descricao"
)

// UseCase casos de uso del catálogo.
type UseCase struct {
	tx      repository.TxRunner
	repo    repository.ProductRepository
	cache   Cache
	log     *logger.Logger
	metrics *metrics.Recorder
}

// NewUseCase construye el caso de uso. cache puede ser nil (sin caché).
func NewUseCase(tx repository.TxRunner, repo repository.ProductRepository, cache Cache, log *logger.Logger, rec *metrics.Recorder) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{tx: tx, repo: repo, cache: cache, log: log.Named("catalog"), metrics: rec}
}

// Lookup devuelve la descripción del código, o "" si no existe. Un código ausente no es error.
func (uc *UseCase) Lookup(ctx context.Context, code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", nil
	}
	if uc.cache != nil {
		if desc, ok := uc.cache.Get(code); ok {
			return desc, nil
		}
	}
	p, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return "", domain.NewStorageError("buscar producto", err)
	}
	desc := ""
	if p != nil {
		desc = p.Description
	}
	if uc.cache != nil {
		uc.cache.Set(strings.Clone(code), desc)
	}
	return desc, nil
}

// UpsertIgnore registra el producto si el código no existe; si existe no lo modifica.
func (uc *UseCase) UpsertIgnore(ctx context.Context, code, description string) error {
	code, description = strings.TrimSpace(code), strings.TrimSpace(description)
	if code == "" {
		return domain.NewValidationError("code", "el código no puede estar vacío")
	}
	if err := uc.repo.InsertIgnore(ctx, entity.Product{Code: code, Description: description}); err != nil {
		return domain.NewStorageError("registrar producto", err)
	}
	uc.Invalidate(code)
	return nil
}

// List devuelve el catálogo completo ordenado por código.
func (uc *UseCase) List(ctx context.Context) ([]entity.Product, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, domain.NewStorageError("listar productos", err)
	}
	return list, nil
}

// BulkReplace reemplaza el catálogo completo por rows en una sola transacción.
// Filas con código vacío se descartan; ante códigos repetidos gana la primera aparición.
func (uc *UseCase) BulkReplace(ctx context.Context, rows []entity.Product) (int, error) {
	clean := make([]entity.Product, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		code := strings.TrimSpace(r.Code)
		if code == "" {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		clean = append(clean, entity.Product{Code: code, Description: strings.TrimSpace(r.Description)})
	}

	err := uc.tx.Run(ctx, func(repos repository.Repos) error {
		return repos.Products.ReplaceAll(ctx, clean)
	})
	if err != nil {
		uc.log.Error().Err(err).Int("rows", len(clean)).Msg("reemplazo del catálogo falló")
		return 0, domain.NewStorageError("reemplazar catálogo", err)
	}
	if uc.cache != nil {
		uc.cache.Purge()
	}
	uc.metrics.CatalogImported()
	uc.log.Info().Int("rows", len(clean)).Msg("catálogo reemplazado")
	return len(clean), nil
}

// Import valida que la tabla tenga las columnas codigo y descricao (el resto se ignora)
// y reemplaza el catálogo. Sin alguna de ellas no se escribe nada.
func (uc *UseCase) Import(ctx context.Context, t report.Table) (int, error) {
	codeIdx, descIdx := t.Index(ColumnCode), t.Index(ColumnDescription)
	if codeIdx < 0 {
		return 0, domain.NewValidationError(ColumnCode, "columna requerida ausente en el archivo")
	}
	if descIdx < 0 {
		return 0, domain.NewValidationError(ColumnDescription, "columna requerida ausente en el archivo")
	}
	rows := make([]entity.Product, 0, t.Len())
	for _, r := range t.Rows {
		rows = append(rows, entity.Product{Code: cell(r, codeIdx), Description: cell(r, descIdx)})
	}
	return uc.BulkReplace(ctx, rows)
}

// Invalidate descarta los códigos de la caché (si hay caché). Lo usa el libro de registros
// después de registrar códigos nuevos.
func (uc *UseCase) Invalidate(codes ...string) {
	if uc.cache != nil {
		uc.cache.Invalidate(codes...)
	}
}

func cell(row []any, idx int) string {
	if idx >= len(row) || row[idx] == nil {
		return ""
	}
	if s, ok := row[idx].(string); ok {
		return s
	}
	return strings.TrimSpace(report.CellString(row[idx]))
}
