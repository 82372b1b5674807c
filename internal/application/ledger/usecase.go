// Package ledger implementa el libro de registros: ajustes de stock de la panadería y
// transformaciones de carne. Cada alta registra también los códigos en el catálogo.
package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/fast-api/internal/domain"
	"github.com/jhoicas/fast-api/internal/domain/entity"
	"github.com/jhoicas/fast-api/internal/domain/report"
	"github.com/jhoicas/fast-api/internal/domain/repository"
	"github.com/jhoicas/fast-api/pkg/logger"
	"github.com/jhoicas/fast-api/pkg/metrics"
)

// Today valor especial de fecha para la vista del día.
const Today = "today"

// StockEntryInput datos de un ajuste de stock. Quantity es texto ("10.5" o "10,5").
type StockEntryInput struct {
	Date        string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Code        string `json:"code" validate:"required"`
	Description string `json:"description" validate:"required"`
	Quantity    string `json:"quantity" validate:"required,quantity"`
	Unit        string `json:"unit" validate:"required,unit"`
	Reason      string `json:"reason" validate:"required,reason"`
	Lot         string `json:"lot"`
}

// TransformationInput datos de una transformación de carne.
type TransformationInput struct {
	Date                   string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	SourceCode             string `json:"source_code" validate:"required"`
	SourceDescription      string `json:"source_description" validate:"required"`
	Quantity               string `json:"quantity" validate:"required,quantity"`
	Unit                   string `json:"unit" validate:"required,unit"`
	DestinationCode        string `json:"destination_code" validate:"required"`
	DestinationDescription string `json:"destination_description" validate:"required"`
	Lot                    string `json:"lot"`
}

// CatalogInvalidator recibe los códigos registrados después del commit.
type CatalogInvalidator interface {
	Invalidate(codes ...string)
}

// Option configura el UseCase.
type Option func(*UseCase)

// WithClock reemplaza el reloj usado para la fecha por defecto.
func WithClock(now func() time.Time) Option {
	return func(uc *UseCase) { uc.now = now }
}

// WithLocation zona horaria de "hoy".
func WithLocation(loc *time.Location) Option {
	return func(uc *UseCase) {
		if loc != nil {
			uc.loc = loc
		}
	}
}

// WithLogger logger del caso de uso.
func WithLogger(l *logger.Logger) Option {
	return func(uc *UseCase) {
		if l != nil {
			uc.log = l.Named("ledger")
		}
	}
}

// WithMetrics contadores de registros.
func WithMetrics(rec *metrics.Recorder) Option {
	return func(uc *UseCase) { uc.metrics = rec }
}

// WithCatalogInvalidator caché del catálogo a invalidar tras cada alta.
func WithCatalogInvalidator(inv CatalogInvalidator) Option {
	return func(uc *UseCase) { uc.invalidator = inv }
}

// UseCase casos de uso del libro de registros.
type UseCase struct {
	tx          repository.TxRunner
	repos       repository.Repos
	now         func() time.Time
	loc         *time.Location
	log         *logger.Logger
	metrics     *metrics.Recorder
	invalidator CatalogInvalidator
}

// NewUseCase construye el caso de uso. repos se usa para lecturas y borrados; las altas
// pasan por tx.
func NewUseCase(tx repository.TxRunner, repos repository.Repos, opts ...Option) *UseCase {
	uc := &UseCase{
		tx:    tx,
		repos: repos,
		now:   time.Now,
		loc:   time.Local,
		log:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Today fecha de hoy en la zona configurada ("YYYY-MM-DD").
func (uc *UseCase) Today() string {
	return uc.now().In(uc.loc).Format(entity.DateLayout)
}

// AppendStockEntry valida y guarda un ajuste de stock; en la misma transacción registra
// (code, description) en el catálogo si el código no existe. Devuelve el id asignado.
func (uc *UseCase) AppendStockEntry(ctx context.Context, in StockEntryInput) (int64, error) {
	in = StockEntryInput{
		Date:        strings.TrimSpace(in.Date),
		Code:        strings.TrimSpace(in.Code),
		Description: strings.TrimSpace(in.Description),
		Quantity:    strings.TrimSpace(in.Quantity),
		Unit:        strings.TrimSpace(in.Unit),
		Reason:      strings.TrimSpace(in.Reason),
		Lot:         strings.TrimSpace(in.Lot),
	}
	if err := validateInput(in); err != nil {
		return 0, err
	}
	qty, _ := report.ParseQuantity(in.Quantity)
	unit, _ := entity.ParseUnit(in.Unit)
	reason, _ := entity.ParseReason(in.Reason)

	entry := &entity.StockAdjustmentEntry{
		Date:        uc.dateOrToday(in.Date),
		Code:        in.Code,
		Description: in.Description,
		Quantity:    qty,
		Unit:        unit,
		Reason:      reason,
		Lot:         in.Lot,
	}

	var id int64
	err := uc.tx.Run(ctx, func(repos repository.Repos) error {
		var err error
		if id, err = repos.StockEntries.Create(ctx, entry); err != nil {
			return err
		}
		return repos.Products.InsertIgnore(ctx, entity.Product{Code: entry.Code, Description: entry.Description})
	})
	if err != nil {
		uc.log.Error().Err(err).Str("code", entry.Code).Msg("no se pudo guardar el ajuste")
		return 0, domain.NewStorageError("guardar ajuste de stock", err)
	}

	uc.afterAppend(entity.KindBakery, entry.Code)
	uc.log.Info().Int64("id", id).Str("code", entry.Code).Str("reason", string(entry.Reason)).
		Str("quantity", entry.Quantity.String()).Msg("ajuste de stock registrado")
	return id, nil
}

// AppendTransformationEntry valida y guarda una transformación; registra los códigos de
// origen y destino en el catálogo dentro de la misma transacción.
func (uc *UseCase) AppendTransformationEntry(ctx context.Context, in TransformationInput) (int64, error) {
	in = TransformationInput{
		Date:                   strings.TrimSpace(in.Date),
		SourceCode:             strings.TrimSpace(in.SourceCode),
		SourceDescription:      strings.TrimSpace(in.SourceDescription),
		Quantity:               strings.TrimSpace(in.Quantity),
		Unit:                   strings.TrimSpace(in.Unit),
		DestinationCode:        strings.TrimSpace(in.DestinationCode),
		DestinationDescription: strings.TrimSpace(in.DestinationDescription),
		Lot:                    strings.TrimSpace(in.Lot),
	}
	if err := validateInput(in); err != nil {
		return 0, err
	}
	qty, _ := report.ParseQuantity(in.Quantity)
	unit, _ := entity.ParseUnit(in.Unit)

	entry := &entity.TransformationEntry{
		Date:                   uc.dateOrToday(in.Date),
		SourceCode:             in.SourceCode,
		SourceDescription:      in.SourceDescription,
		Quantity:               qty,
		Unit:                   unit,
		DestinationCode:        in.DestinationCode,
		DestinationDescription: in.DestinationDescription,
		Lot:                    in.Lot,
	}

	var id int64
	err := uc.tx.Run(ctx, func(repos repository.Repos) error {
		var err error
		if id, err = repos.Transformations.Create(ctx, entry); err != nil {
			return err
		}
		if err := repos.Products.InsertIgnore(ctx, entity.Product{Code: entry.SourceCode, Description: entry.SourceDescription}); err != nil {
			return err
		}
		return repos.Products.InsertIgnore(ctx, entity.Product{Code: entry.DestinationCode, Description: entry.DestinationDescription})
	})
	if err != nil {
		uc.log.Error().Err(err).Str("source", entry.SourceCode).Msg("no se pudo guardar la transformación")
		return 0, domain.NewStorageError("guardar transformación", err)
	}

	uc.afterAppend(entity.KindMeat, entry.SourceCode, entry.DestinationCode)
	uc.log.Info().Int64("id", id).Str("source", entry.SourceCode).Str("destination", entry.DestinationCode).
		Str("quantity", entry.Quantity.String()).Msg("transformación registrada")
	return id, nil
}

// ListStockEntries devuelve los ajustes en orden de id. date vacío lista todo;
// Today lista los de hoy.
func (uc *UseCase) ListStockEntries(ctx context.Context, date string) ([]entity.StockAdjustmentEntry, error) {
	date, err := uc.resolveDate(date)
	if err != nil {
		return nil, err
	}
	var list []entity.StockAdjustmentEntry
	if date == "" {
		list, err = uc.repos.StockEntries.List(ctx)
	} else {
		list, err = uc.repos.StockEntries.ListByDate(ctx, date)
	}
	if err != nil {
		return nil, domain.NewStorageError("listar ajustes de stock", err)
	}
	return list, nil
}

// ListTransformations igual que ListStockEntries para las transformaciones.
func (uc *UseCase) ListTransformations(ctx context.Context, date string) ([]entity.TransformationEntry, error) {
	date, err := uc.resolveDate(date)
	if err != nil {
		return nil, err
	}
	var list []entity.TransformationEntry
	if date == "" {
		list, err = uc.repos.Transformations.List(ctx)
	} else {
		list, err = uc.repos.Transformations.ListByDate(ctx, date)
	}
	if err != nil {
		return nil, domain.NewStorageError("listar transformaciones", err)
	}
	return list, nil
}

// DeleteByID elimina un registro. Un id inexistente no es error.
func (uc *UseCase) DeleteByID(ctx context.Context, kind entity.Kind, id int64) error {
	var err error
	switch kind {
	case entity.KindBakery:
		err = uc.repos.StockEntries.Delete(ctx, id)
	case entity.KindMeat:
		err = uc.repos.Transformations.Delete(ctx, id)
	default:
		return domain.NewValidationError("kind", "tipo de registro inválido")
	}
	if err != nil {
		return domain.NewStorageError("eliminar registro", err)
	}
	uc.metrics.EntryDeleted(string(kind))
	uc.log.Info().Str("kind", string(kind)).Int64("id", id).Msg("registro eliminado")
	return nil
}

// Count número de registros del libro indicado.
func (uc *UseCase) Count(ctx context.Context, kind entity.Kind) (int64, error) {
	var (
		n   int64
		err error
	)
	switch kind {
	case entity.KindBakery:
		n, err = uc.repos.StockEntries.Count(ctx)
	case entity.KindMeat:
		n, err = uc.repos.Transformations.Count(ctx)
	default:
		return 0, domain.NewValidationError("kind", "tipo de registro inválido")
	}
	if err != nil {
		return 0, domain.NewStorageError("contar registros", err)
	}
	return n, nil
}

func (uc *UseCase) afterAppend(kind entity.Kind, codes ...string) {
	if uc.invalidator != nil {
		uc.invalidator.Invalidate(codes...)
	}
	uc.metrics.EntryRecorded(string(kind))
}

func (uc *UseCase) dateOrToday(date string) string {
	if date == "" {
		return uc.Today()
	}
	return date
}

func (uc *UseCase) resolveDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	switch date {
	case "":
		return "", nil
	case Today:
		return uc.Today(), nil
	}
	if _, err := time.Parse(entity.DateLayout, date); err != nil {
		return "", domain.NewValidationError("date", "fecha inválida, formato YYYY-MM-DD")
	}
	return date, nil
}
