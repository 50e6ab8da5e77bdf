package usecase

import (
	"time"

	"github.com/invorya/stockroom-api/internal/application/auth"
	"github.com/invorya/stockroom-api/internal/application/dto"
	"github.com/invorya/stockroom-api/internal/domain"
	"github.com/invorya/stockroom-api/internal/domain/entity"
	"github.com/invorya/stockroom-api/internal/domain/repository"
)

// UserUseCase administración de usuarios (listado, cambio de rol, borrado).
// Las tres operaciones están detrás del umbral superadmin en la tabla de
// permisos; aquí solo quedan los invariantes que no dependen de la ruta.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista usuarios con paginación.
func (uc *UserUseCase) List(page dto.PageRequest) (*dto.UserListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// UpdateRole cambia el rol de un usuario. El nuevo rol debe pertenecer a la
// jerarquía. El token del afectado no se revoca: el rol viejo sigue vigente
// dentro de él hasta que vuelva a autenticarse.
func (uc *UserUseCase) UpdateRole(targetID string, in dto.UpdateRoleRequest) (*dto.UserResponse, error) {
	role := entity.Role(in.Role)
	if !role.Valid() {
		return nil, domain.Validationf("role (%q) inválido: debe ser user, admin o superadmin", in.Role)
	}
	user, err := uc.repo.GetByID(targetID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	user.Role = role
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Delete elimina un usuario. Nadie borra su propia cuenta, sin importar el rol.
func (uc *UserUseCase) Delete(callerID, targetID string) error {
	if callerID == targetID {
		return domain.ErrForbidden
	}
	user, err := uc.repo.GetByID(targetID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.Delete(user.ID)
}
