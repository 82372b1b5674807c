// Package export genera los artefactos descargables del libro de registros: el libro XLSX
// con el detalle y sus agregados, y el resumen PDF.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/fast-api/internal/domain"
	"github.com/jhoicas/fast-api/internal/domain/entity"
	"github.com/jhoicas/fast-api/internal/domain/report"
	"github.com/jhoicas/fast-api/pkg/logger"
	"github.com/jhoicas/fast-api/pkg/metrics"
)

// Tipos de contenido de los artefactos.
const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)

// Option configura el UseCase.
type Option func(*UseCase)

// WithClock reloj usado en el nombre del archivo.
func WithClock(now func() time.Time) Option { return func(uc *UseCase) { uc.now = now } }

// WithLocation zona horaria del nombre del archivo.
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
			uc.log = l.Named("export")
		}
	}
}

// WithMetrics contador de exportaciones.
func WithMetrics(rec *metrics.Recorder) Option { return func(uc *UseCase) { uc.metrics = rec } }

// WithSummaryRenderer habilita Summary.
func WithSummaryRenderer(r SummaryRenderer) Option { return func(uc *UseCase) { uc.renderer = r } }

// UseCase arma los artefactos a partir del libro de registros.
type UseCase struct {
	source   EntrySource
	writer   SpreadsheetWriter
	renderer SummaryRenderer
	now      func() time.Time
	loc      *time.Location
	log      *logger.Logger
	metrics  *metrics.Recorder
}

// NewUseCase construye el caso de uso.
func NewUseCase(source EntrySource, writer SpreadsheetWriter, opts ...Option) *UseCase {
	uc := &UseCase{source: source, writer: writer, now: time.Now, loc: time.Local, log: logger.Nop()}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Sheets lee el libro completo de kind y arma sus hojas.
func (uc *UseCase) Sheets(ctx context.Context, kind entity.Kind) ([]report.Sheet, error) {
	switch kind {
	case entity.KindBakery:
		entries, err := uc.source.ListStockEntries(ctx, "")
		if err != nil {
			return nil, err
		}
		return BakerySheets(entries)
	case entity.KindMeat:
		entries, err := uc.source.ListTransformations(ctx, "")
		if err != nil {
			return nil, err
		}
		return MeatSheets(entries)
	}
	return nil, domain.NewValidationError("kind", "tipo de registro inválido")
}

// Export devuelve el libro XLSX de kind, generado en memoria.
func (uc *UseCase) Export(ctx context.Context, kind entity.Kind) (Artifact, error) {
	sheets, err := uc.Sheets(ctx, kind)
	if err != nil {
		return Artifact{}, err
	}
	data, err := uc.writer.Write(sheets)
	if err != nil {
		uc.log.Error().Err(err).Str("kind", string(kind)).Msg("no se pudo generar el XLSX")
		return Artifact{}, fmt.Errorf("exportar %s: %w", kind, err)
	}
	uc.metrics.Exported(string(kind), "xlsx")
	uc.log.Info().Str("kind", string(kind)).Int("rows", sheets[0].Table.Len()).Msg("exportación generada")
	return Artifact{FileName: uc.fileName(kind, "xlsx"), ContentType: ContentTypeXLSX, Data: data}, nil
}

// Summary devuelve el resumen PDF con las hojas agregadas de kind (sin el detalle).
func (uc *UseCase) Summary(ctx context.Context, kind entity.Kind) (Artifact, error) {
	if uc.renderer == nil {
		return Artifact{}, fmt.Errorf("resumen PDF no configurado")
	}
	sheets, err := uc.Sheets(ctx, kind)
	if err != nil {
		return Artifact{}, err
	}
	title := fmt.Sprintf("Resumo %s %s", kindTitle(kind), uc.today())
	data, err := uc.renderer.Render(title, sheets[1:])
	if err != nil {
		uc.log.Error().Err(err).Str("kind", string(kind)).Msg("no se pudo generar el PDF")
		return Artifact{}, fmt.Errorf("resumen %s: %w", kind, err)
	}
	uc.metrics.Exported(string(kind), "pdf")
	return Artifact{FileName: uc.fileName(kind, "pdf"), ContentType: ContentTypePDF, Data: data}, nil
}

func (uc *UseCase) today() string {
	return uc.now().In(uc.loc).Format(entity.DateLayout)
}

func (uc *UseCase) fileName(kind entity.Kind, ext string) string {
	return fmt.Sprintf("%s_%s.%s", kind, uc.today(), ext)
}

func kindTitle(kind entity.Kind) string {
	if kind == entity.KindMeat {
		return "Açougue"
	}
	return "Padaria"
}
