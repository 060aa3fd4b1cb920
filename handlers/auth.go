package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/shouvik177/HRMS-Backend/middleware"
	"github.com/shouvik177/HRMS-Backend/models"
	"github.com/shouvik177/HRMS-Backend/stores"

	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	users  stores.UserStore
	tokens stores.TokenStore
}

func NewAuthHandler(users stores.UserStore, tokens stores.TokenStore) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authUser struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type authResponse struct {
	Token string   `json:"token"`
	User  authUser `json:"user"`
}

func newAuthResponse(user *models.User, token *models.Token) authResponse {
	return authResponse{
		Token: token.Key,
		User:  authUser{ID: user.ID, Email: user.Email, Name: user.DisplayName()},
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondDetail(w, http.StatusBadRequest, "Malformed JSON body.")
		return
	}

	email := strings.TrimSpace(req.Email)
	name := strings.TrimSpace(req.Name)

	if email == "" {
		respondDetail(w, http.StatusBadRequest, "Email is required.")
		return
	}
	if req.Password == "" {
		respondDetail(w, http.StatusBadRequest, "Password is required.")
		return
	}
	if len(req.Password) < 6 {
		respondDetail(w, http.StatusBadRequest, "Password must be at least 6 characters.")
		return
	}

	taken, err := h.users.EmailTaken(email)
	if err != nil {
		respondDetail(w, http.StatusInternalServerError, "Failed to create account.")
		return
	}
	if taken {
		respondDetail(w, http.StatusBadRequest, "A user with this email already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondDetail(w, http.StatusInternalServerError, "Failed to create account.")
		return
	}

	user := models.User{Email: email, Name: name, PasswordHash: string(hashedPassword)}
	if err := h.users.Create(&user); err != nil {
		// Concurrent register with the same email; the unique index decides.
		if errors.Is(err, stores.ErrDuplicate) {
			respondDetail(w, http.StatusBadRequest, "A user with this email already exists.")
			return
		}
		respondDetail(w, http.StatusInternalServerError, "Failed to create account.")
		return
	}

	token, err := h.tokens.GetOrCreate(user.ID)
	if err != nil {
		respondDetail(w, http.StatusInternalServerError, "Failed to issue token.")
		return
	}

	respondJSON(w, http.StatusCreated, newAuthResponse(&user, token))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondDetail(w, http.StatusBadRequest, "Malformed JSON body.")
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		respondDetail(w, http.StatusBadRequest, "Email and password are required.")
		return
	}

	user, err := h.users.FindByEmail(email)
	if err != nil {
		respondDetail(w, http.StatusUnauthorized, "Invalid email or password.")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		respondDetail(w, http.StatusUnauthorized, "Invalid email or password.")
		return
	}

	// Tokens are reused across logins, not rotated.
	token, err := h.tokens.GetOrCreate(user.ID)
	if err != nil {
		respondDetail(w, http.StatusInternalServerError, "Failed to issue token.")
		return
	}

	respondJSON(w, http.StatusOK, newAuthResponse(user, token))
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		respondDetail(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
		return
	}

	if err := h.tokens.DeleteForUser(user.ID); err != nil {
		respondDetail(w, http.StatusInternalServerError, "Failed to log out.")
		return
	}

	respondDetail(w, http.StatusOK, "Logged out successfully.")
}
