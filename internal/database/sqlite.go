package database

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

var DB *sql.DB

func InitDB() error {
	// Crear el directorio database si no existe
	if err := os.MkdirAll("database", 0755); err != nil {
		return err
	}

	var err error
	DB, err = sql.Open("sqlite3", filepath.Join("database", "zelcry.db")+"?_foreign_keys=on")
	if err != nil {
		return err
	}

	return CreateSchema(DB)
}

// CreateSchema crea todas las tablas si no existen. Se expone por separado
// para poder inicializar bases de datos en memoria durante los tests.
func CreateSchema(db *sql.DB) error {
	// Crear tabla de usuarios
	createUsersTableSQL := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		name TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := db.Exec(createUsersTableSQL); err != nil {
		return err
	}

	// Crear tabla de perfiles de usuario (uno por usuario, se crea junto con la cuenta)
	createProfilesTableSQL := `
	CREATE TABLE IF NOT EXISTS user_profiles (
		user_id TEXT PRIMARY KEY,
		risk_tolerance TEXT NOT NULL DEFAULT 'Low',
		xp_points INTEGER NOT NULL DEFAULT 0,
		theme TEXT NOT NULL DEFAULT 'light',
		FOREIGN KEY(user_id) REFERENCES users(id) ON DELETE CASCADE
	);`

	if _, err := db.Exec(createProfilesTableSQL); err != nil {
		return err
	}

	// Crear tabla de activos del portafolio
	// quantity y purchase_price se guardan como TEXT para no perder precisión decimal
	createAssetsTableSQL := `
	CREATE TABLE IF NOT EXISTS portfolio_assets (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		coin_id TEXT NOT NULL,
		coin_name TEXT NOT NULL,
		coin_symbol TEXT NOT NULL,
		quantity TEXT NOT NULL,
		purchase_price TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY(user_id) REFERENCES users(id) ON DELETE CASCADE
	);`

	if _, err := db.Exec(createAssetsTableSQL); err != nil {
		return err
	}

	// Crear tabla de detalles de impacto por criptomoneda
	createDetailsTableSQL := `
	CREATE TABLE IF NOT EXISTS crypto_asset_details (
		coin_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		symbol TEXT NOT NULL,
		energy_score INTEGER NOT NULL DEFAULT 0,
		governance_score INTEGER NOT NULL DEFAULT 0,
		utility_score INTEGER NOT NULL DEFAULT 0,
		description TEXT
	);`

	if _, err := db.Exec(createDetailsTableSQL); err != nil {
		return err
	}

	// Crear tabla de mensajes de chat (usuarios registrados o invitados por sesión)
	createChatTableSQL := `
	CREATE TABLE IF NOT EXISTS chat_messages (
		id TEXT PRIMARY KEY,
		user_id TEXT,
		session_id TEXT,
		message TEXT NOT NULL,
		response TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY(user_id) REFERENCES users(id) ON DELETE CASCADE
	);`

	if _, err := db.Exec(createChatTableSQL); err != nil {
		return err
	}

	// Crear tabla de alertas de precio
	createAlertsTableSQL := `
	CREATE TABLE IF NOT EXISTS price_alerts (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		coin_id TEXT NOT NULL,
		coin_name TEXT NOT NULL,
		target_price TEXT NOT NULL,
		condition TEXT NOT NULL,
		is_active INTEGER NOT NULL DEFAULT 1,
		triggered_at DATETIME,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY(user_id) REFERENCES users(id) ON DELETE CASCADE
	);`

	if _, err := db.Exec(createAlertsTableSQL); err != nil {
		return err
	}

	// Crear tabla de watchlist
	createWatchlistTableSQL := `
	CREATE TABLE IF NOT EXISTS watchlist (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		coin_id TEXT NOT NULL,
		coin_name TEXT NOT NULL,
		coin_symbol TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(user_id, coin_id),
		FOREIGN KEY(user_id) REFERENCES users(id) ON DELETE CASCADE
	);`

	if _, err := db.Exec(createWatchlistTableSQL); err != nil {
		return err
	}

	// Crear tabla de snapshots del portafolio (registros inmutables)
	createSnapshotsTableSQL := `
	CREATE TABLE IF NOT EXISTS portfolio_snapshots (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		total_value TEXT NOT NULL,
		total_invested TEXT NOT NULL,
		profit_loss TEXT NOT NULL,
		roi TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY(user_id) REFERENCES users(id) ON DELETE CASCADE
	);`

	if _, err := db.Exec(createSnapshotsTableSQL); err != nil {
		return err
	}

	// Crear índice para búsqueda rápida de snapshots por usuario y fecha
	createSnapshotsIndexSQL := `
	CREATE INDEX IF NOT EXISTS idx_portfolio_snapshots_user_date
	ON portfolio_snapshots(user_id, created_at);`

	if _, err := db.Exec(createSnapshotsIndexSQL); err != nil {
		return err
	}

	// Ejecutar migraciones para actualizar el esquema
	return RunMigrations(db)
}
