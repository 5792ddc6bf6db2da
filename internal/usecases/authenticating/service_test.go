package authenticating

import (
	"testing"

	"github.com/ecomistry/backoffice-api/infrastructure/repository/mocks"
	"github.com/ecomistry/backoffice-api/internal/config"
	"github.com/ecomistry/backoffice-api/internal/domain"
	"github.com/ecomistry/backoffice-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "Senha@Forte1"

func hashedTestPassword(t *testing.T) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func employeeFixture(t *testing.T) *domain.Employee {
	return &domain.Employee{
		ID:           7,
		Name:         "Ana",
		Lastname:     "Souza",
		Email:        "ana@ecomistry.com",
		PasswordHash: hashedTestPassword(t),
		Active:       true,
		RoleID:       2,
	}
}

func newAuthService(repo *mocks.MockEmployeeRepository) Authenticator {
	return NewService(repo, &config.Config{SecretKey: "segredo-de-teste"})
}

func TestLoginUser(t *testing.T) {
	t.Run("Login válido devolve token com as claims do funcionário", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockEmployeeRepository(ctrl)
		service := newAuthService(mockRepo)

		mockRepo.EXPECT().GetByEmail("ana@ecomistry.com").Return(employeeFixture(t), nil)

		token, err := service.LoginUser("  Ana@Ecomistry.com ", testPassword)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, 7, claims.EmployeeID)
		assert.Equal(t, "ana@ecomistry.com", claims.EmployeeEmail)
		assert.Equal(t, 2, claims.EmployeeRoleID)
	})

	t.Run("Senha incorreta retorna credenciais inválidas com o ID do funcionário", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockEmployeeRepository(ctrl)
		service := newAuthService(mockRepo)

		mockRepo.EXPECT().GetByEmail("ana@ecomistry.com").Return(employeeFixture(t), nil)

		_, err := service.LoginUser("ana@ecomistry.com", "senha-errada")

		var authErr *AuthError
		if assert.ErrorAs(t, err, &authErr) {
			assert.Equal(t, apiErrors.ErrInvalidCredentials, authErr.Code)
			assert.Equal(t, 7, authErr.EmployeeID)
		}
	})

	t.Run("Funcionário desativado não entra", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockEmployeeRepository(ctrl)
		service := newAuthService(mockRepo)

		disabled := employeeFixture(t)
		disabled.Active = false
		mockRepo.EXPECT().GetByEmail("ana@ecomistry.com").Return(disabled, nil)

		_, err := service.LoginUser("ana@ecomistry.com", testPassword)

		var authErr *AuthError
		if assert.ErrorAs(t, err, &authErr) {
			assert.Equal(t, apiErrors.ErrUserDisabled, authErr.Code)
		}
	})

	t.Run("Email desconhecido retorna funcionário não encontrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockEmployeeRepository(ctrl)
		service := newAuthService(mockRepo)

		mockRepo.EXPECT().GetByEmail("nao@ecomistry.com").Return(nil, nil)

		_, err := service.LoginUser("nao@ecomistry.com", testPassword)

		var authErr *AuthError
		if assert.ErrorAs(t, err, &authErr) {
			assert.Equal(t, apiErrors.ErrUserNotFound, authErr.Code)
		}
	})

	t.Run("Email ou senha vazios são recusados sem consultar o banco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := newAuthService(mocks.NewMockEmployeeRepository(ctrl))

		_, err := service.LoginUser("", "")

		var authErr *AuthError
		if assert.ErrorAs(t, err, &authErr) {
			assert.Equal(t, apiErrors.ErrMissingRequiredData, authErr.Code)
		}
	})
}

func TestValidateToken_WrongSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockEmployeeRepository(ctrl)
	mockRepo.EXPECT().GetByEmail("ana@ecomistry.com").Return(employeeFixture(t), nil)

	token, err := newAuthService(mockRepo).LoginUser("ana@ecomistry.com", testPassword)
	assert.NoError(t, err)

	other := NewService(mocks.NewMockEmployeeRepository(ctrl), &config.Config{SecretKey: "outro-segredo"})
	_, err = other.ValidateToken(token)

	assert.Error(t, err)
}

func TestValidatePasswordStrength(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newAuthService(mocks.NewMockEmployeeRepository(ctrl))

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"Senha completa passa", "Senha@Forte1", true},
		{"Curta demais", "S@f1", false},
		{"Sem maiúscula", "senha@forte1", false},
		{"Sem número", "Senha@Forte", false},
		{"Sem caractere especial", "SenhaForte1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestChangePassword(t *testing.T) {
	t.Run("Senha atual incorreta bloqueia a troca", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockEmployeeRepository(ctrl)
		service := newAuthService(mockRepo)

		fixture := employeeFixture(t)
		mockRepo.EXPECT().GetByID(7).Return(fixture, nil)
		mockRepo.EXPECT().GetByEmail(fixture.Email).Return(fixture, nil)

		err := service.ChangePassword(7, "senha-errada", "Nova@Senha1")

		assert.Error(t, err)
	})

	t.Run("Nova senha fraca é recusada antes de gravar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockEmployeeRepository(ctrl)
		service := newAuthService(mockRepo)

		fixture := employeeFixture(t)
		mockRepo.EXPECT().GetByID(7).Return(fixture, nil)
		mockRepo.EXPECT().GetByEmail(fixture.Email).Return(fixture, nil)

		err := service.ChangePassword(7, testPassword, "fraca")

		assert.Error(t, err)
	})

	t.Run("Troca válida grava o novo hash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockEmployeeRepository(ctrl)
		service := newAuthService(mockRepo)

		fixture := employeeFixture(t)
		mockRepo.EXPECT().GetByID(7).Return(fixture, nil)
		mockRepo.EXPECT().GetByEmail(fixture.Email).Return(fixture, nil)
		mockRepo.EXPECT().UpdatePassword(7, gomock.Any()).DoAndReturn(func(id int, hash string) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("Nova@Senha1")))
			return nil
		})

		err := service.ChangePassword(7, testPassword, "Nova@Senha1")

		assert.NoError(t, err)
	})
}

func TestGenerateStrongPassword(t *testing.T) {
	t.Run("Solicitante sem perfil de administrador é recusado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockEmployeeRepository(ctrl)
		service := newAuthService(mockRepo)

		requester := employeeFixture(t)
		mockRepo.EXPECT().GetByID(7).Return(requester, nil)

		_, err := service.GenerateStrongPassword(7, 9)

		var authErr *AuthError
		if assert.ErrorAs(t, err, &authErr) {
			assert.Equal(t, apiErrors.ErrInsufficientPrivilege, authErr.Code)
		}
	})

	t.Run("Administrador gera senha forte e grava o hash do alvo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockEmployeeRepository(ctrl)
		service := newAuthService(mockRepo)

		admin := employeeFixture(t)
		admin.RoleID = 1
		target := employeeFixture(t)
		target.ID = 9

		mockRepo.EXPECT().GetByID(7).Return(admin, nil)
		mockRepo.EXPECT().GetByID(9).Return(target, nil)
		mockRepo.EXPECT().UpdatePassword(9, gomock.Any()).Return(nil)

		password, err := service.GenerateStrongPassword(7, 9)

		assert.NoError(t, err)
		assert.NoError(t, service.ValidatePasswordStrength(password))
	})
}
