package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"redmedicos-be/internal/user"
	"redmedicos-be/internal/utils"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func setAccessTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handlers) register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "잘못된 요청 형식입니다", http.StatusBadRequest)
		return
	}
	if req.Email == "" || len(req.Password) < 8 {
		utils.WriteJSONError(w, "이메일과 8자 이상의 비밀번호를 입력해주세요", http.StatusBadRequest)
		return
	}

	token, u, err := h.Users.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrEmailExists) {
			utils.WriteJSONError(w, "이미 가입된 이메일입니다", http.StatusConflict)
			return
		}
		utils.WriteJSONError(w, "회원가입에 실패했습니다", http.StatusInternalServerError)
		return
	}

	setAccessTokenCookie(w, token)
	utils.WriteJSON(w, http.StatusCreated, authResponse{
		Token: token,
		User:  userResponse{ID: u.ID, Email: u.Email, Role: string(u.Role)},
	})
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "잘못된 요청 형식입니다", http.StatusBadRequest)
		return
	}

	token, u, err := h.Users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			utils.WriteJSONError(w, "이메일 또는 비밀번호가 올바르지 않습니다", http.StatusUnauthorized)
			return
		}
		utils.WriteJSONError(w, "로그인에 실패했습니다", http.StatusInternalServerError)
		return
	}

	setAccessTokenCookie(w, token)
	utils.WriteJSON(w, http.StatusOK, authResponse{
		Token: token,
		User:  userResponse{ID: u.ID, Email: u.Email, Role: string(u.Role)},
	})
}

func (h *Handlers) me(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	utils.WriteJSON(w, http.StatusOK, userResponse{
		ID:    int(userID),
		Email: utils.GetUserEmailFromContext(r.Context()),
		Role:  utils.GetUserRoleFromContext(r.Context()),
	})
}
