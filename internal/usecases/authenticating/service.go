package authenticating

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ecomistry/backoffice-api/infrastructure/repository"
	"github.com/ecomistry/backoffice-api/internal/config"
	"github.com/ecomistry/backoffice-api/internal/domain"
	"github.com/ecomistry/backoffice-api/pkg/apiErrors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type Authenticator interface {
	LoginUser(email, password string) (string, error)
	GetProfile(employeeID int) (*domain.Employee, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	GenerateStrongPassword(requestEmployeeID, targetEmployeeID int) (string, error)
	ChangePassword(employeeID int, currentPassword, newPassword string) error
	ValidatePasswordStrength(password string) error
	HashPassword(password string) (string, error)
}

type Service struct {
	employeeRepo repository.EmployeeRepository
	cfg          *config.Config
}

func NewService(employeeRepo repository.EmployeeRepository, cfg *config.Config) Authenticator {
	return &Service{
		employeeRepo: employeeRepo,
		cfg:          cfg,
	}
}

func (s *Service) LoginUser(email, password string) (string, error) {
	// Validação de entrada
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email = handleEmail(email)

	employee, err := s.employeeRepo.GetByEmail(email)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar funcionário no banco de dados")
	}

	// Verificar se o funcionário existe
	if employee == nil {
		return "", NewAuthError(ErrEmployeeNotFound, apiErrors.ErrUserNotFound, "Funcionário não encontrado")
	}

	// Verificar se o funcionário está ativo
	if !employee.Active {
		return "", NewEmployeeAuthError(ErrEmployeeDisabled, apiErrors.ErrUserDisabled, employee.ID, "Conta desativada")
	}

	// Verificar senha
	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)); err != nil {
		return "", NewEmployeeAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, employee.ID, "Senha incorreta")
	}

	// Gerar token JWT
	token, err := generateJWT(employee, s.cfg.SecretKey)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) GetProfile(employeeID int) (*domain.Employee, error) {
	employee, err := s.employeeRepo.GetByID(employeeID)
	if err != nil {
		logrus.Error(err)
		return nil, err
	}

	if employee == nil {
		return nil, NewAuthError(ErrEmployeeNotFound, apiErrors.ErrUserNotFound, "Funcionário não encontrado")
	}

	employee.PasswordHash = ""
	return employee, nil
}

func generateJWT(employee *domain.Employee, secretKey string) (string, error) {
	claims := domain.Claims{
		EmployeeID:       employee.ID,
		EmployeeName:     employee.Name,
		EmployeeLastname: employee.Lastname,
		EmployeeEmail:    employee.Email,
		EmployeeActive:   employee.Active,
		EmployeeRoleID:   employee.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// HashPassword gera o hash bcrypt de uma senha em texto claro
func (s *Service) HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// GenerateStrongPassword gera uma senha forte para o funcionário alvo.
// Verifica se o solicitante tem perfil de administrador (role_id = 1) antes de prosseguir.
func (s *Service) GenerateStrongPassword(requestEmployeeID, targetEmployeeID int) (string, error) {
	// Verificar se o solicitante é um administrador
	requester, err := s.employeeRepo.GetByID(requestEmployeeID)
	if err != nil {
		return "", err
	}
	if requester == nil {
		return "", errors.New("funcionário solicitante não encontrado")
	}
	if requester.RoleID != 1 {
		return "", NewAuthError(ErrNoAdminPrivileges, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem gerar novas senhas")
	}

	// Verificar se o funcionário alvo existe
	target, err := s.employeeRepo.GetByID(targetEmployeeID)
	if err != nil {
		return "", err
	}
	if target == nil {
		return "", errors.New("funcionário alvo não encontrado")
	}

	// Gerar senha forte
	newPassword, err := generateStrongPassword(12)
	if err != nil {
		return "", err
	}

	// Hash da nova senha
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	err = s.employeeRepo.UpdatePassword(target.ID, string(hashedPassword))
	if err != nil {
		return "", err
	}

	return newPassword, nil
}

// generateStrongPassword gera uma senha forte com o comprimento especificado
// incluindo letras maiúsculas, minúsculas, números e caracteres especiais
func generateStrongPassword(length int) (string, error) {
	if length < 8 {
		length = 8 // Comprimento mínimo para senhas fortes
	}

	const (
		lowerChars   = "abcdefghijklmnopqrstuvwxyz"
		upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
		numberChars  = "0123456789"
		specialChars = "!@#$%^&*()-_=+[]{}|;:,.<>?"
		allChars     = lowerChars + upperChars + numberChars + specialChars
	)

	// Garantir que a senha tenha pelo menos um caractere de cada tipo
	password := make([]byte, length)

	randomChar, err := getRandomChar(lowerChars)
	if err != nil {
		return "", err
	}
	password[0] = randomChar

	randomChar, err = getRandomChar(upperChars)
	if err != nil {
		return "", err
	}
	password[1] = randomChar

	randomChar, err = getRandomChar(numberChars)
	if err != nil {
		return "", err
	}
	password[2] = randomChar

	randomChar, err = getRandomChar(specialChars)
	if err != nil {
		return "", err
	}
	password[3] = randomChar

	// Preencher o resto com caracteres aleatórios
	for i := 4; i < length; i++ {
		randomChar, err = getRandomChar(allChars)
		if err != nil {
			return "", err
		}
		password[i] = randomChar
	}

	// Embaralhar a senha para que os caracteres não fiquem em ordem previsível
	for i := range password {
		j, err := randomInt(int64(len(password)))
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}

// getRandomChar retorna um caractere aleatório do conjunto fornecido
func getRandomChar(charset string) (byte, error) {
	n, err := randomInt(int64(len(charset)))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

// randomInt gera um número aleatório seguro entre 0 e max-1
func randomInt(max int64) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}

// ValidatePasswordStrength verifica se a senha atende aos requisitos de segurança.
// Senha deve conter pelo menos 8 caracteres, incluindo maiúsculas, minúsculas,
// números e caracteres especiais.
func (s *Service) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("a senha deve conter pelo menos 8 caracteres")
	}

	var (
		hasUpper   bool
		hasLower   bool
		hasNumber  bool
		hasSpecial bool
	)

	const (
		lowerChars   = "abcdefghijklmnopqrstuvwxyz"
		upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
		numberChars  = "0123456789"
		specialChars = "!@#$%^&*()-_=+[]{}|;:,.<>?"
	)

	for _, char := range password {
		switch {
		case strings.ContainsRune(lowerChars, char):
			hasLower = true
		case strings.ContainsRune(upperChars, char):
			hasUpper = true
		case strings.ContainsRune(numberChars, char):
			hasNumber = true
		case strings.ContainsRune(specialChars, char):
			hasSpecial = true
		}
	}

	if !hasUpper {
		return errors.New("a senha deve conter pelo menos uma letra maiúscula")
	}
	if !hasLower {
		return errors.New("a senha deve conter pelo menos uma letra minúscula")
	}
	if !hasNumber {
		return errors.New("a senha deve conter pelo menos um número")
	}
	if !hasSpecial {
		return errors.New("a senha deve conter pelo menos um caractere especial")
	}

	return nil
}

// ChangePassword permite que um funcionário altere sua própria senha.
// Verifica se a senha atual está correta e se a nova atende aos requisitos.
func (s *Service) ChangePassword(employeeID int, currentPassword, newPassword string) error {
	// Obter o funcionário pelo ID
	profile, err := s.employeeRepo.GetByID(employeeID)
	if err != nil {
		return err
	}

	if profile == nil {
		return errors.New("funcionário não encontrado")
	}

	// A listagem não carrega o hash da senha; buscar por email carrega
	current, err := s.employeeRepo.GetByEmail(profile.Email)
	if err != nil {
		return err
	}
	if current == nil {
		return errors.New("funcionário não encontrado")
	}

	// Verificar se a senha atual está correta
	if err := bcrypt.CompareHashAndPassword([]byte(current.PasswordHash), []byte(currentPassword)); err != nil {
		return errors.New("senha atual incorreta")
	}

	// Validar se a nova senha atende aos requisitos de segurança
	if err := s.ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	// Gerar hash da nova senha
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.employeeRepo.UpdatePassword(current.ID, string(hashedPassword))
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}
