package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder contadores de la operación: registros, borrados, exportaciones e importaciones.
type Recorder struct {
	recorded *prometheus.CounterVec
	deleted  *prometheus.CounterVec
	exports  *prometheus.CounterVec
	imports  prometheus.Counter
}

// NewRecorder registra los contadores en reg. Con reg nil devuelve un Recorder inerte.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		return &Recorder{}
	}
	recorded := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fast_entries_recorded_total",
		Help: "Registros agregados al libro, por tipo.",
	}, []string{"kind"})
	deleted := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fast_entries_deleted_total",
		Help: "Registros borrados del libro, por tipo.",
	}, []string{"kind"})
	exports := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fast_exports_total",
		Help: "Artefactos exportados, por tipo y formato.",
	}, []string{"kind", "format"})
	imports := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "fast_catalog_imports_total",
		Help: "Importaciones completas del catálogo.",
	})
	reg.MustRegister(recorded, deleted, exports, imports)
	return &Recorder{recorded: recorded, deleted: deleted, exports: exports, imports: imports}
}

// EntryRecorded incrementa el contador de registros del tipo kind.
func (r *Recorder) EntryRecorded(kind string) {
	if r == nil || r.recorded == nil {
		return
	}
	r.recorded.WithLabelValues(kind).Inc()
}

// EntryDeleted incrementa el contador de borrados del tipo kind.
func (r *Recorder) EntryDeleted(kind string) {
	if r == nil || r.deleted == nil {
		return
	}
	r.deleted.WithLabelValues(kind).Inc()
}

// Exported incrementa el contador de exportaciones.
func (r *Recorder) Exported(kind, format string) {
	if r == nil || r.exports == nil {
		return
	}
	r.exports.WithLabelValues(kind, format).Inc()
}

// CatalogImported incrementa el contador de importaciones del catálogo.
func (r *Recorder) CatalogImported() {
	if r == nil || r.imports == nil {
		return
	}
	r.imports.Inc()
}
