package database

import (
	"database/sql"
	"log"
)

// RunMigrations ejecuta las migraciones necesarias para actualizar el esquema de la base de datos
func RunMigrations(db *sql.DB) error {
	log.Println("Ejecutando migraciones de la base de datos...")

	// Migración para añadir el símbolo de la moneda a las alertas de precio
	addAlertSymbolColumnSQL := `
	ALTER TABLE price_alerts ADD COLUMN coin_symbol TEXT DEFAULT '';
	`

	if _, err := db.Exec(addAlertSymbolColumnSQL); err != nil {
		// No retornamos error porque SQLite da error si la columna ya existe
		// y queremos que la migración continúe
		log.Printf("Migración coin_symbol en price_alerts omitida: %v", err)
	} else {
		log.Println("Columna coin_symbol añadida a price_alerts")
	}

	return nil
}
