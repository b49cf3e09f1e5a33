package repository

import (
	"database/sql"
	"errors"

	"github.com/zelcry/zelcry-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Errores comunes de los repositorios
var (
	ErrUserNotFound  = errors.New("usuario no encontrado")
	ErrEmailTaken    = errors.New("el email ya está registrado")
	ErrAssetNotFound = errors.New("activo no encontrado")
	ErrAlertNotFound = errors.New("alerta no encontrada")
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser guarda el usuario y crea su perfil en la misma transacción.
// El perfil arranca con los puntos de experiencia del registro.
func (r *UserRepository) CreateUser(user *models.User, riskTolerance string, initialXP int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	insertUserSQL := `
		INSERT INTO users (id, email, password, name)
		VALUES (?, ?, ?, ?)`

	if _, err := tx.Exec(insertUserSQL, user.ID, user.Email, user.Password, user.Name); err != nil {
		return err
	}

	insertProfileSQL := `
		INSERT INTO user_profiles (user_id, risk_tolerance, xp_points, theme)
		VALUES (?, ?, ?, 'light')`

	if _, err := tx.Exec(insertProfileSQL, user.ID, riskTolerance, initialXP); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *UserRepository) GetUserById(id string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, name, created_at FROM users WHERE id = ?`

	err := r.db.QueryRow(query, id).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}

	return user, err
}

func (r *UserRepository) GetUserByEmail(email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, name, created_at FROM users WHERE email = ?`

	err := r.db.QueryRow(query, email).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.Name,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}

	return user, err
}

func (r *UserRepository) EmailExists(email string) (bool, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM users WHERE email = ?`, email).Scan(&count)
	return count > 0, err
}

func (r *UserRepository) UpdateUser(user *models.User) error {
	query := `
		UPDATE users
		SET email = ?, name = ?
		WHERE id = ?`

	_, err := r.db.Exec(query, user.Email, user.Name, user.ID)
	return err
}

// DeleteUser elimina el usuario; perfil, activos, alertas, watchlist, chats
// y snapshots caen en cascada por las claves foráneas
func (r *UserRepository) DeleteUser(id string) error {
	query := `DELETE FROM users WHERE id = ?`

	_, err := r.db.Exec(query, id)
	return err
}

func (r *UserRepository) UpdatePassword(email, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	query := `UPDATE users SET password = ? WHERE email = ?`

	_, err = r.db.Exec(query, string(hashedPassword), email)
	return err
}
