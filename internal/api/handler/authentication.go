package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ecomistry/backoffice-api/internal/domain"
	"github.com/ecomistry/backoffice-api/internal/usecases/authenticating"
	"github.com/ecomistry/backoffice-api/pkg/apiErrors"
	"github.com/ecomistry/backoffice-api/pkg/middleware"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GeneratePasswordResponse struct {
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func Login(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		// Decodificar o corpo da requisição
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		// Tentar realizar o login
		token, err := service.LoginUser(req.Email, req.Password)
		if err != nil {
			handleLoginError(w, err)
			return
		}

		// Sucesso: retornar o token
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"token": token,
		})
	})
}

// GetMe retorna as informações do funcionário logado
func GetMe(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Obter a sessão do funcionário a partir do contexto
		claims, ok := r.Context().Value(middleware.ContextKeySession).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Funcionário não autenticado", nil)
			return
		}

		// Obter o perfil completo do funcionário através do ID presente no token
		employee, err := service.GetProfile(claims.EmployeeID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao obter dados do funcionário", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(employee); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// handleLoginError trata erros específicos de login e retorna a resposta apropriada
func handleLoginError(w http.ResponseWriter, err error) {
	// Tentar fazer cast para AuthError para obter mais detalhes
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), map[string]any{
			"employee_id": authErr.EmployeeID,
		})
		return
	}

	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)

	case errors.Is(err, authenticating.ErrEmployeeDisabled):
		apiErrors.WriteError(w, apiErrors.ErrUserDisabled, "Funcionário desativado", nil)

	case errors.Is(err, authenticating.ErrEmployeeNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Funcionário não encontrado", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
	}
}

// ChangePassword permite que o funcionário altere a própria senha.
// Requer que o funcionário esteja autenticado.
func ChangePassword(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ChangePassword")

		// Obter ID do funcionário alvo da URL
		targetIDStr := pathParam(r, "id")
		if targetIDStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do funcionário não fornecido", nil)
			return
		}

		targetID, err := strconv.Atoi(targetIDStr)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do funcionário inválido", nil)
			return
		}

		claims, ok := r.Context().Value(middleware.ContextKeySession).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
			return
		}

		var req ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		// A troca de senha só vale para a própria conta
		if claims.EmployeeID != targetID {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Não autorizado a alterar a senha de outro funcionário", nil)
			return
		}

		if err := service.ChangePassword(targetID, req.CurrentPassword, req.NewPassword); err != nil {
			logrus.Error(err)

			switch {
			case errors.Is(err, authenticating.ErrEmployeeNotFound):
				apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Funcionário não encontrado", nil)

			case errors.Is(err, authenticating.ErrInvalidCredentials):
				apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Senha atual incorreta", nil)

			case errors.Is(err, authenticating.ErrWeakPassword):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao alterar senha", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	})
}

// GeneratePassword gera uma senha forte para um funcionário.
// Requer que o solicitante seja um administrador (role_id = 1).
func GeneratePassword(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GeneratePassword")

		claims, ok := r.Context().Value(middleware.ContextKeySession).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
			return
		}

		targetIDStr := pathParam(r, "id")
		if targetIDStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do funcionário não fornecido", nil)
			return
		}

		targetID, err := strconv.Atoi(targetIDStr)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do funcionário inválido", nil)
			return
		}

		newPassword, err := service.GenerateStrongPassword(claims.EmployeeID, targetID)
		if err != nil {
			logrus.Error(err)

			switch {
			case errors.Is(err, authenticating.ErrNoAdminPrivileges):
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, err.Error(), nil)

			case errors.Is(err, authenticating.ErrEmployeeNotFound):
				apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Funcionário não encontrado", nil)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar senha", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(GeneratePasswordResponse{
			Password: newPassword,
		})
	})
}
