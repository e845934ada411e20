package entity

import "time"

// Roles predefinidos del sistema (se crean en el seed inicial; la tabla roles
// admite roles adicionales definidos por el administrador).
const (
	RoleAdministrador = "administrador"
	RoleAlmacenista   = "almacenista"
	RoleMesero        = "mesero"
)

// Role rol de usuario con borrado lógico. No puede eliminarse mientras tenga
// usuarios visibles asignados.
type Role struct {
	ID          string
	Name        string
	Description string
	Visible     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	RoleID       string
	RoleName     string // denormalizado en lecturas (JOIN roles)
	Visible      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EventLog registro de auditoría de acciones sobre el inventario.
// Escritura best-effort: un fallo al registrar nunca bloquea la operación.
type EventLog struct {
	ID        string
	UserID    string
	Action    string // create, update, delete, login, movement
	Entity    string // product, container, role, user, movement
	EntityID  string
	Detail    string
	CreatedAt time.Time
}
