package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastror/resto-inventario/internal/application/dto"
	"github.com/jcastror/resto-inventario/internal/application/usecase"
	"github.com/jcastror/resto-inventario/internal/domain"
	"github.com/jcastror/resto-inventario/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeRoleRepo struct {
	roles map[string]*entity.Role
}

func newFakeRoleRepo(roles ...*entity.Role) *fakeRoleRepo {
	r := &fakeRoleRepo{roles: make(map[string]*entity.Role)}
	for _, role := range roles {
		r.roles[role.ID] = role
	}
	return r
}

func (r *fakeRoleRepo) Create(role *entity.Role) error {
	r.roles[role.ID] = role
	return nil
}

func (r *fakeRoleRepo) GetByID(id string) (*entity.Role, error) {
	role, ok := r.roles[id]
	if !ok || !role.Visible {
		return nil, nil
	}
	return role, nil
}

func (r *fakeRoleRepo) GetByName(name string) (*entity.Role, error) {
	for _, role := range r.roles {
		if role.Visible && role.Name == name {
			return role, nil
		}
	}
	return nil, nil
}

func (r *fakeRoleRepo) Update(role *entity.Role) error {
	r.roles[role.ID] = role
	return nil
}

func (r *fakeRoleRepo) List() ([]*entity.Role, error) {
	var out []*entity.Role
	for _, role := range r.roles {
		if role.Visible {
			out = append(out, role)
		}
	}
	return out, nil
}

func (r *fakeRoleRepo) SoftDelete(id string) error {
	if role, ok := r.roles[id]; ok {
		role.Visible = false
	}
	return nil
}

// fakeUserCounter implementa solo lo que RoleUseCase necesita del puerto de
// usuarios; el resto de métodos no se invoca en estos tests.
type fakeUserCounter struct {
	visibleByRole map[string]int
}

func (f *fakeUserCounter) Create(*entity.User) error { return nil }
func (f *fakeUserCounter) GetByID(string) (*entity.User, error) { return nil, nil }
func (f *fakeUserCounter) FindByIdentifier(string) (*entity.User, error) { return nil, nil }
func (f *fakeUserCounter) Update(*entity.User) error { return nil }
func (f *fakeUserCounter) List(int, int) ([]*entity.User, error) { return nil, nil }
func (f *fakeUserCounter) SoftDelete(string) error { return nil }
func (f *fakeUserCounter) CountVisibleByRole(roleID string) (int, error) {
	return f.visibleByRole[roleID], nil
}

func visibleRole(id, name string) *entity.Role {
	now := time.Now()
	return &entity.Role{ID: id, Name: name, Visible: true, CreatedAt: now, UpdatedAt: now}
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete con dependientes
// ──────────────────────────────────────────────────────────────────────────────

func TestRoleDelete_ConUsuariosAsignados_FallaYRolSigueVisible(t *testing.T) {
	role := visibleRole("r1", "almacenista")
	repo := newFakeRoleRepo(role)
	users := &fakeUserCounter{visibleByRole: map[string]int{"r1": 3}}
	uc := usecase.NewRoleUseCase(repo, users, nil)

	err := uc.Delete("actor", "r1")

	assert.ErrorIs(t, err, domain.ErrHasDependents,
		"eliminar un rol con usuarios visibles debe fallar")
	assert.True(t, repo.roles["r1"].Visible,
		"el rol debe seguir visible tras el intento fallido")
}

func TestRoleDelete_SinUsuarios_MarcaNoVisible(t *testing.T) {
	role := visibleRole("r1", "temporal")
	repo := newFakeRoleRepo(role)
	users := &fakeUserCounter{visibleByRole: map[string]int{}}
	uc := usecase.NewRoleUseCase(repo, users, nil)

	err := uc.Delete("actor", "r1")

	require.NoError(t, err)
	assert.False(t, repo.roles["r1"].Visible, "soft delete debe apagar visible")
}

func TestRoleDelete_RolInexistente(t *testing.T) {
	uc := usecase.NewRoleUseCase(newFakeRoleRepo(), &fakeUserCounter{}, nil)

	err := uc.Delete("actor", "no-existe")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / Update
// ──────────────────────────────────────────────────────────────────────────────

func TestRoleCreate_NombreVacio(t *testing.T) {
	uc := usecase.NewRoleUseCase(newFakeRoleRepo(), &fakeUserCounter{}, nil)

	_, err := uc.Create("actor", dto.CreateRoleRequest{Name: ""})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRoleCreate_NombreDuplicado(t *testing.T) {
	repo := newFakeRoleRepo(visibleRole("r1", "mesero"))
	uc := usecase.NewRoleUseCase(repo, &fakeUserCounter{}, nil)

	_, err := uc.Create("actor", dto.CreateRoleRequest{Name: "mesero"})

	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRoleCreate_OK(t *testing.T) {
	repo := newFakeRoleRepo()
	uc := usecase.NewRoleUseCase(repo, &fakeUserCounter{}, nil)

	out, err := uc.Create("actor", dto.CreateRoleRequest{Name: "cajero", Description: "caja"})

	require.NoError(t, err)
	require.NotNil(t, out)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "cajero", out.Name)
	assert.Len(t, repo.roles, 1)
}

func TestRoleUpdate_Inexistente_RetornaNil(t *testing.T) {
	uc := usecase.NewRoleUseCase(newFakeRoleRepo(), &fakeUserCounter{}, nil)

	name := "otro"
	out, err := uc.Update("actor", "no-existe", dto.UpdateRoleRequest{Name: &name})

	require.NoError(t, err)
	assert.Nil(t, out)
}
