// import_catalog reemplaza el catálogo de productos a partir de un archivo .xlsx o .csv
// con columnas codigo y descricao. Usa la misma configuración que la API (DB_DRIVER, SQLITE_PATH, ...).
//
// Uso: go run ./cmd/import_catalog ruta/catalogo.xlsx
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/fast-api/internal/application/catalog"
	"github.com/jhoicas/fast-api/internal/infrastructure/spreadsheet"
	"github.com/jhoicas/fast-api/internal/infrastructure/store"
	"github.com/jhoicas/fast-api/pkg/config"
	"github.com/jhoicas/fast-api/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Uso: import_catalog <archivo.xlsx|archivo.csv>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer archivo: %v\n", err)
		os.Exit(1)
	}
	table, err := spreadsheet.ReadFile(path, data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Interpretar archivo: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	st, err := store.Open(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir almacén: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	uc := catalog.NewUseCase(st.Tx, st.Repos.Products, nil, log, nil)
	n, err := uc.Import(ctx, table)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Importar catálogo: %v\n", err)
		st.Close()
		os.Exit(1)
	}
	fmt.Printf("Catálogo reemplazado: %d productos desde %s\n", n, path)
}
