// importar repuebla la tabla de equipos desde la hoja de inventario.
//
// Uso: go run ./cmd/importar [-latin1] [ruta/archivo.xlsx|.csv]
// Por defecto busca "INVENTARIO CPU 2025.xlsx" en el directorio actual.
//
// Corrida destructiva: primero vacía la tabla y luego inserta fila a fila.
// No es transaccional; un corte a mitad deja la tabla parcialmente cargada.
package main

import (
	"context"
	"flag"

	"github.com/jhoicas/inventario-municipal/internal/application/importer"
	"github.com/jhoicas/inventario-municipal/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-municipal/pkg/config"
	"github.com/jhoicas/inventario-municipal/pkg/logger"
)

func main() {
	latin1 := flag.Bool("latin1", false, "decodificar el .csv como ISO-8859-1")
	flag.Parse()

	ruta := "INVENTARIO CPU 2025.xlsx"
	if flag.NArg() > 0 {
		ruta = flag.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	filas, err := importer.LeerArchivo(ruta, *latin1)
	if err != nil {
		log.Fatal().Err(err).Str("archivo", ruta).Msg("leer hoja de inventario")
	}
	log.Info().Str("archivo", ruta).Int("filas", len(filas)).Msg("hoja cargada")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.InitSchema(ctx, pool, log); err != nil {
		log.Fatal().Err(err).Msg("inicializar esquema")
	}

	repo := postgres.NewEquipoRepository(pool)
	res, err := importer.Importar(ctx, repo, filas, log)
	if err != nil {
		log.Fatal().Err(err).Msg("importación fallida")
	}

	log.Info().
		Int("insertados", res.Insertados).
		Int("errores", res.Errores).
		Int("omitidas", res.Omitidas).
		Msg("importación completada")

	if stats, err := repo.Estadisticas(ctx); err == nil {
		log.Info().
			Int("total", stats.Total).
			Int("pc", stats.PC).
			Int("laptop", stats.Laptop).
			Int("servidor", stats.Servidor).
			Msg("estadísticas del inventario")
	}
	if oficinas, err := repo.Oficinas(ctx); err == nil {
		log.Info().Strs("oficinas", oficinas).Msg("oficinas registradas")
	}
}
