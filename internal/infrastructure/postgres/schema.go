package postgres

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-municipal/pkg/logger"
)

const createUsuariosTable = `
	CREATE TABLE IF NOT EXISTS usuarios (
		id SERIAL PRIMARY KEY,
		username VARCHAR(50) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		nombre_completo VARCHAR(100) NOT NULL,
		rol VARCHAR(20) DEFAULT 'usuario' CHECK (rol IN ('admin', 'usuario')),
		activo BOOLEAN DEFAULT true,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`

const createEquiposTable = `
	CREATE TABLE IF NOT EXISTS equipos (
		id SERIAL PRIMARY KEY,
		numero VARCHAR(20) NOT NULL,
		oficina VARCHAR(100) NOT NULL,
		tipo VARCHAR(50) NOT NULL CHECK (tipo IN ('PC', 'LAPTOP', 'SERVIDOR', 'IMPRESORA')),
		microprocesador VARCHAR(100),
		sistema_operativo VARCHAR(100),
		marca VARCHAR(100),
		memoria_ram VARCHAR(50),
		disco_duro VARCHAR(100),
		estado VARCHAR(20) DEFAULT 'BUENO' CHECK (estado IN ('BUENO', 'REGULAR', 'MALO')),
		monitor VARCHAR(100),
		sede VARCHAR(50) DEFAULT 'PRINCIPAL',
		escaner VARCHAR(10) DEFAULT 'NO',
		impresoras TEXT,
		ip VARCHAR(50),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`

// equiposEjemplo datos de muestra que se insertan solo cuando la tabla de equipos
// está vacía, para que una instalación recién levantada no arranque en blanco.
var equiposEjemplo = [][]any{
	{"1", "CATASTRO", "PC", "Intel® Core™ i9 -14900 3.2 GHz", "Windows 11 Pro", "FURY", "32 GB", "1 TB SSD", "BUENO", `Teros 27"`, "PRINCIPAL", "NO", "Multifuncional Epson EcoTank L5590", "182.18.8.44"},
	{"2", "CATASTRO", "PC", "Intel® Core™ i7 -8700 3.2GHz", "Windows 10 Pro", "Antrix", "16 GB", "930 GB HDD", "REGULAR", `LG 24"`, "PRINCIPAL", "NO", "", "182.18.8.204"},
	{"3", "CATASTRO", "PC", "Intel® Core™ i7-13700 2.1GHz", "Windows 11 Pro", "ALLWIYA", "32 GB", "1.5 TB HDD", "REGULAR", `SAMSUNG 32"`, "PRINCIPAL", "NO", "Multifuncional Epson EcoTank L5590", "182.18.8.156"},
	{"35", "INFRAESTRUCTURA", "LAPTOP", "Intel® Core™ i9-13900 2.00GHz", "Windows 11 Pro", "HP OMEN", "32 GB", "950 GB SSD", "BUENO", `LG 15.6"`, "PRINCIPAL", "NO", "XEROX 350", "182.18.8.120"},
	{"176", "AREA DE INFORMATICA", "SERVIDOR", "Intel(R) xeon(R) Silver 4208 CPU@ 2.1 Ghz", "Windows Server 2016", "DELLEMC", "32 GB", "1 TB SAS", "BUENO", `SAMSUNG 22"`, "PRINCIPAL", "NO", "", "8"},
}

// InitSchema crea las tablas si no existen y siembra la cuenta admin por defecto
// y los equipos de muestra. Idempotente: seguro de ejecutar en cada arranque.
func InitSchema(ctx context.Context, q Querier, log *logger.Logger) error {
	if _, err := q.Exec(ctx, createUsuariosTable); err != nil {
		return fmt.Errorf("crear tabla usuarios: %w", err)
	}
	if _, err := q.Exec(ctx, createEquiposTable); err != nil {
		return fmt.Errorf("crear tabla equipos: %w", err)
	}

	var adminCount int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM usuarios WHERE username = 'admin'`).Scan(&adminCount); err != nil {
		return fmt.Errorf("verificar admin: %w", err)
	}
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash admin: %w", err)
		}
		_, err = q.Exec(ctx,
			`INSERT INTO usuarios (username, password, nombre_completo, rol)
			 VALUES ($1, $2, $3, $4)`,
			"admin", string(hash), "Administrador del Sistema", "admin",
		)
		if err != nil {
			return fmt.Errorf("sembrar admin: %w", err)
		}
		log.Info().Msg("usuario admin por defecto creado")
	}

	var equiposCount int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM equipos`).Scan(&equiposCount); err != nil {
		return fmt.Errorf("contar equipos: %w", err)
	}
	if equiposCount == 0 {
		const insertEquipo = `
			INSERT INTO equipos (numero, oficina, tipo, microprocesador, sistema_operativo,
				marca, memoria_ram, disco_duro, estado, monitor, sede, escaner, impresoras, ip)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
		for _, e := range equiposEjemplo {
			if _, err := q.Exec(ctx, insertEquipo, e...); err != nil {
				return fmt.Errorf("sembrar equipos de ejemplo: %w", err)
			}
		}
		log.Info().Int("equipos", len(equiposEjemplo)).Msg("equipos de ejemplo insertados")
	}

	log.Info().Msg("esquema de base de datos verificado")
	return nil
}
