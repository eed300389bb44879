package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vaughan-dsouza/salesdesk/internal/logger"
	"github.com/vaughan-dsouza/salesdesk/internal/models"
	"github.com/vaughan-dsouza/salesdesk/internal/utils"
)

type UserHandler struct {
	svc    UserService
	cookie CookieConfig
	log    *logger.Logger
}

func NewUserHandler(svc UserService, cookie CookieConfig, log *logger.Logger) *UserHandler {
	return &UserHandler{svc: svc, cookie: cookie, log: log}
}

// ----------- Request/Response DTOs -------------

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResp struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type confirmResp struct {
	Message string      `json:"message"`
	User    models.User `json:"user"`
}

type updateResp struct {
	Message string      `json:"message"`
	NewUser models.User `json:"newUser"`
}

type sessionResp struct {
	Session models.Session `json:"session"`
}

// ---------------------- LIST ----------------------

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	users, err := h.svc.List(r.Context(), models.UserFilter{
		Name:  q.Get("name"),
		Email: q.Get("email"),
	})
	if err != nil {
		fail(w, r, h.log, err)
		return
	}

	utils.JSON(w, http.StatusOK, users)
}

// ---------------------- REGISTER ----------------------

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterInput
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		badBody(w, err)
		return
	}

	token, err := h.svc.Register(r.Context(), req)
	if err != nil {
		fail(w, r, h.log, err)
		return
	}

	utils.JSON(w, http.StatusCreated, tokenResp{Message: "User created successfully", Token: token})
}

// ---------------------- CONFIRM ----------------------

func (h *UserHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.Confirm(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		fail(w, r, h.log, err)
		return
	}

	utils.JSON(w, http.StatusOK, confirmResp{Message: "User confirmed successfully", User: user})
}

// ---------------------- LOGIN ----------------------

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		badBody(w, err)
		return
	}

	res, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		fail(w, r, h.log, err)
		return
	}

	http.SetCookie(w, h.sessionCookie(res.Session.ID, res.Session.ExpiresAt))
	utils.JSON(w, http.StatusOK, tokenResp{Message: "Login successful", Token: res.Token})
}

// ---------------------- LOGOUT ----------------------

func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(r.Context(), h.sessionID(r)); err != nil {
		h.log.Error("logout failed", "error", err.Error())
		utils.Message(w, http.StatusInternalServerError, "Error destroying session")
		return
	}

	expired := h.sessionCookie("", time.Unix(0, 0))
	expired.MaxAge = -1
	http.SetCookie(w, expired)
	utils.Message(w, http.StatusOK, "Session destroyed")
}

// ---------------------- SESSION ----------------------

func (h *UserHandler) Session(w http.ResponseWriter, r *http.Request) {
	session, err := h.svc.Session(r.Context(), h.sessionID(r))
	if err != nil {
		fail(w, r, h.log, err)
		return
	}

	utils.JSON(w, http.StatusOK, sessionResp{Session: session})
}

// ---------------------- DELETE ----------------------

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "email")); err != nil {
		fail(w, r, h.log, err)
		return
	}

	utils.Message(w, http.StatusOK, "User deleted successfully")
}

// ---------------------- UPDATE ----------------------

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateUserInput
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		badBody(w, err)
		return
	}

	user, err := h.svc.Update(r.Context(), req)
	if err != nil {
		fail(w, r, h.log, err)
		return
	}

	utils.JSON(w, http.StatusOK, updateResp{Message: "User updated successfully", NewUser: user})
}

func (h *UserHandler) sessionID(r *http.Request) string {
	c, err := r.Cookie(h.cookie.Name)
	if err != nil {
		return ""
	}
	return c.Value
}

func (h *UserHandler) sessionCookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		MaxAge:   int(h.cookie.TTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
