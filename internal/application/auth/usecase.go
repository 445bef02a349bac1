package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Lubriportal-api/internal/application/dto"
	"github.com/jhoicas/Lubriportal-api/internal/domain"
	"github.com/jhoicas/Lubriportal-api/internal/domain/entity"
	"github.com/jhoicas/Lubriportal-api/internal/domain/repository"
	"github.com/jhoicas/Lubriportal-api/pkg/jwt"
	"github.com/jhoicas/Lubriportal-api/pkg/logger"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// SessionSnapshot puerto del snapshot de sesión persistido (análogo del
// localStorage del front-end). La implementación concreta vive en
// infrastructure/snapshot; para tests se inyecta un fake.
type SessionSnapshot interface {
	SaveUser(u *entity.User) error
	LoadUser() (*entity.User, error)
	Clear() error
}

// ConnectionState puerto de la bandera de conexión del panel de integración.
// La implementación concreta es el auto-sync de infrastructure/sap.
type ConnectionState interface {
	SetConnected(connected bool)
}

// UseCase casos de uso de sesión: login, logout, restauración y permisos.
type UseCase struct {
	userRepo repository.UserRepository
	snapshot SessionSnapshot
	conn     ConnectionState // puede ser nil si no hay integración configurada
	jwtCfg   JWTConfig
	log      *logger.Logger
}

// NewUseCase construye el caso de uso de sesión.
func NewUseCase(userRepo repository.UserRepository, snapshot SessionSnapshot, conn ConnectionState, jwtCfg JWTConfig, log *logger.Logger) *UseCase {
	return &UseCase{userRepo: userRepo, snapshot: snapshot, conn: conn, jwtCfg: jwtCfg, log: log}
}

// Login autentica según el contrato del mock: el rol se deriva del username
// por substring y el login siempre tiene éxito salvo error interno. La única
// excepción son las cuentas demo sembradas, que sí verifican su contraseña
// bcrypt. Persiste el snapshot de sesión (fallo de snapshot solo se loguea).
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user != nil && user.PasswordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
			return nil, domain.ErrUnauthorized
		}
	}
	if user == nil {
		user = newMockUser(username)
		if err := uc.userRepo.Create(user); err != nil {
			return nil, err
		}
	}

	token, err := jwt.Generate(
		uc.jwtCfg.Secret,
		user.ID, user.Username, user.Role, user.CustomerCode, user.Permissions,
		uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes,
	)
	if err != nil {
		return nil, err
	}

	if err := uc.snapshot.SaveUser(user); err != nil {
		uc.log.Warn().Err(err).Str("username", username).Msg("no se pudo persistir el snapshot de sesión")
	}

	return &dto.LoginResponse{Token: token, User: *dto.ToUserResponse(user)}, nil
}

// Logout elimina el snapshot de sesión persistido y apaga la bandera de
// conexión, deteniendo el auto-sync. Nunca es fatal.
func (uc *UseCase) Logout() error {
	if err := uc.snapshot.Clear(); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo eliminar el snapshot de sesión")
	}
	if uc.conn != nil {
		uc.conn.SetConnected(false)
	}
	return nil
}

// Restore intenta cargar la sesión persistida al iniciar la aplicación.
// Ante cualquier fallo (archivo corrupto, versión desconocida) se loguea y se
// arranca sin sesión: el sistema abre a rol invitado.
func (uc *UseCase) Restore() *entity.User {
	user, err := uc.snapshot.LoadUser()
	if err != nil {
		uc.log.Warn().Err(err).Msg("snapshot de sesión ilegible, arrancando como invitado")
		return nil
	}
	return user
}

// HasPermission verifica un permiso del usuario. Un usuario nil (invitado) solo
// conserva los permisos por defecto del rol invitado.
func (uc *UseCase) HasPermission(u *entity.User, perm string) bool {
	if u == nil {
		for _, p := range DefaultPermissions(entity.RoleGuest) {
			if p == perm {
				return true
			}
		}
		return false
	}
	return u.HasPermission(perm)
}

// DeriveRole aplica la tabla de derivación por substring del contrato mock.
func DeriveRole(username string) string {
	lower := strings.ToLower(username)
	switch {
	case strings.Contains(lower, "admin"):
		return entity.RoleAdmin
	case strings.Contains(lower, "employee"):
		return entity.RoleEmployee
	default:
		return entity.RoleCustomer
	}
}

// DefaultPermissions tabla rol→permisos asignada al iniciar sesión.
func DefaultPermissions(role string) []string {
	browse := []string{entity.PermBrowseCatalog, entity.PermRequestQuote}
	switch role {
	case entity.RoleCustomer:
		return append(browse, entity.PermManageCart, entity.PermCheckout, entity.PermViewOrders)
	case entity.RoleEmployee:
		return append(browse,
			entity.PermManageCart, entity.PermCheckout, entity.PermViewOrders,
			entity.PermPriceQuotes, entity.PermViewInventory, entity.PermSAPSync)
	case entity.RoleAdmin:
		// Admin implica todos vía User.HasPermission; la lista queda explícita
		// para que el token sea autodescriptivo.
		return append(browse,
			entity.PermManageCart, entity.PermCheckout, entity.PermViewOrders,
			entity.PermPriceQuotes, entity.PermViewInventory, entity.PermSAPSync)
	default: // invitado
		return browse
	}
}

// newMockUser crea el usuario ad-hoc del contrato mock a partir del username.
func newMockUser(username string) *entity.User {
	role := DeriveRole(username)
	u := &entity.User{
		ID:          uuid.New().String(),
		Username:    username,
		Email:       username + "@lubriportal.demo",
		Role:        role,
		Permissions: DefaultPermissions(role),
		Preferences: entity.Preferences{Portal: role, Notifications: true, AutoSync: role != entity.RoleCustomer},
		CreatedAt:   time.Now(),
	}
	if role == entity.RoleCustomer {
		u.CustomerCode = "C-" + strings.ToUpper(uuid.New().String()[:8])
	}
	return u
}
