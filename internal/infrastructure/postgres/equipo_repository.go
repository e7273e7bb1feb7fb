package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-municipal/internal/domain"
	"github.com/jhoicas/inventario-municipal/internal/domain/entity"
	"github.com/jhoicas/inventario-municipal/internal/domain/repository"
)

var _ repository.EquipoRepository = (*EquipoRepo)(nil)

const columnasEquipo = `id, numero, oficina, tipo, microprocesador, sistema_operativo, marca,
	memoria_ram, disco_duro, estado, monitor, sede, escaner, impresoras, ip, created_at, updated_at`

// EquipoRepo implementación del puerto EquipoRepository sobre PostgreSQL (usable con pool, tx o mock).
type EquipoRepo struct {
	q Querier
}

// NewEquipoRepository construye el adaptador de persistencia para equipos.
func NewEquipoRepository(q Querier) *EquipoRepo {
	return &EquipoRepo{q: q}
}

func scanEquipo(row pgx.Row) (*entity.Equipo, error) {
	var e entity.Equipo
	err := row.Scan(
		&e.ID, &e.Numero, &e.Oficina, &e.Tipo, &e.Microprocesador, &e.SistemaOperativo,
		&e.Marca, &e.MemoriaRAM, &e.DiscoDuro, &e.Estado, &e.Monitor, &e.Sede,
		&e.Escaner, &e.Impresoras, &e.IP, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// List devuelve los equipos que cumplen los filtros, en orden id ASC.
func (r *EquipoRepo) List(ctx context.Context, f repository.Filtros) ([]entity.Equipo, error) {
	query, args := construirListado(f)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list equipos: %w", err)
	}
	defer rows.Close()
	var list []entity.Equipo
	for rows.Next() {
		e, err := scanEquipo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan equipo: %w", err)
		}
		list = append(list, *e)
	}
	return list, rows.Err()
}

// GetByID obtiene un equipo por ID. Devuelve (nil, nil) si no existe.
func (r *EquipoRepo) GetByID(ctx context.Context, id int) (*entity.Equipo, error) {
	query := `SELECT ` + columnasEquipo + ` FROM equipos WHERE id = $1`
	e, err := scanEquipo(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get equipo: %w", err)
	}
	return e, nil
}

// Create inserta el equipo y devuelve la fila persistida con id y timestamps.
func (r *EquipoRepo) Create(ctx context.Context, e *entity.Equipo) (*entity.Equipo, error) {
	query := `
		INSERT INTO equipos (numero, oficina, tipo, microprocesador, sistema_operativo,
			marca, memoria_ram, disco_duro, estado, monitor, sede, escaner, impresoras, ip)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + columnasEquipo
	created, err := scanEquipo(r.q.QueryRow(ctx, query,
		e.Numero, e.Oficina, e.Tipo, e.Microprocesador, e.SistemaOperativo,
		e.Marca, e.MemoriaRAM, e.DiscoDuro, e.Estado, e.Monitor,
		e.Sede, e.Escaner, e.Impresoras, e.IP,
	))
	if err != nil {
		return nil, fmt.Errorf("insert equipo: %w", err)
	}
	return created, nil
}

// Update aplica una actualización parcial vía COALESCE: un puntero nil conserva el
// valor almacenado, un puntero a "" lo vacía. updated_at se refresca siempre.
func (r *EquipoRepo) Update(ctx context.Context, id int, c repository.EquipoUpdate) (*entity.Equipo, error) {
	query := `
		UPDATE equipos SET
			numero            = COALESCE($1, numero),
			oficina           = COALESCE($2, oficina),
			tipo              = COALESCE($3, tipo),
			microprocesador   = COALESCE($4, microprocesador),
			sistema_operativo = COALESCE($5, sistema_operativo),
			marca             = COALESCE($6, marca),
			memoria_ram       = COALESCE($7, memoria_ram),
			disco_duro        = COALESCE($8, disco_duro),
			estado            = COALESCE($9, estado),
			monitor           = COALESCE($10, monitor),
			sede              = COALESCE($11, sede),
			escaner           = COALESCE($12, escaner),
			impresoras        = COALESCE($13, impresoras),
			ip                = COALESCE($14, ip),
			updated_at        = CURRENT_TIMESTAMP
		WHERE id = $15
		RETURNING ` + columnasEquipo
	updated, err := scanEquipo(r.q.QueryRow(ctx, query,
		c.Numero, c.Oficina, c.Tipo, c.Microprocesador, c.SistemaOperativo,
		c.Marca, c.MemoriaRAM, c.DiscoDuro, c.Estado, c.Monitor,
		c.Sede, c.Escaner, c.Impresoras, c.IP, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update equipo: %w", err)
	}
	return updated, nil
}

// Delete elimina la fila definitivamente. Devuelve domain.ErrNotFound si el id no existe.
func (r *EquipoRepo) Delete(ctx context.Context, id int) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM equipos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete equipo: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Estadisticas calcula el total y los sub-conteos por tipo y estado en una sola
// consulta. Los sub-conteos usan ILIKE '%x%' a propósito: los datos heredados
// traen variantes de texto que un match exacto dejaría fuera.
func (r *EquipoRepo) Estadisticas(ctx context.Context) (*repository.Estadisticas, error) {
	query := `
		SELECT
			COUNT(*)                                          AS total,
			COUNT(*) FILTER (WHERE tipo   ILIKE '%pc%')       AS pc,
			COUNT(*) FILTER (WHERE tipo   ILIKE '%laptop%')   AS laptop,
			COUNT(*) FILTER (WHERE tipo   ILIKE '%servidor%') AS servidor,
			COUNT(*) FILTER (WHERE estado ILIKE '%bueno%')    AS bueno,
			COUNT(*) FILTER (WHERE estado ILIKE '%regular%')  AS regular,
			COUNT(*) FILTER (WHERE estado ILIKE '%malo%')     AS malo
		FROM equipos`
	var s repository.Estadisticas
	err := r.q.QueryRow(ctx, query).Scan(
		&s.Total, &s.PC, &s.Laptop, &s.Servidor, &s.Bueno, &s.Regular, &s.Malo,
	)
	if err != nil {
		return nil, fmt.Errorf("estadisticas equipos: %w", err)
	}
	return &s, nil
}

// Oficinas devuelve las oficinas distintas en orden alfabético.
func (r *EquipoRepo) Oficinas(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT DISTINCT oficina FROM equipos ORDER BY oficina`)
	if err != nil {
		return nil, fmt.Errorf("oficinas: %w", err)
	}
	defer rows.Close()
	var oficinas []string
	for rows.Next() {
		var o string
		if err := rows.Scan(&o); err != nil {
			return nil, fmt.Errorf("scan oficina: %w", err)
		}
		oficinas = append(oficinas, o)
	}
	return oficinas, rows.Err()
}

// SiguienteNumero devuelve max+1 sobre los números de inventario puramente numéricos
// ("1" si no hay ninguno). Los números no numéricos se ignoran, no son un error.
func (r *EquipoRepo) SiguienteNumero(ctx context.Context) (string, error) {
	query := `
		SELECT COALESCE(MAX(CAST(numero AS INTEGER)), 0) + 1
		FROM equipos
		WHERE numero ~ '^[0-9]+$'`
	var siguiente int
	if err := r.q.QueryRow(ctx, query).Scan(&siguiente); err != nil {
		return "", fmt.Errorf("siguiente numero: %w", err)
	}
	return strconv.Itoa(siguiente), nil
}

// DeleteAll vacía la tabla de equipos. Solo lo usa el importador masivo.
func (r *EquipoRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM equipos`); err != nil {
		return fmt.Errorf("delete all equipos: %w", err)
	}
	return nil
}
