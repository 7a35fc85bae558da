package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/bloglist/internal/auth"
	"github.com/2beens/bloglist/internal/middleware"
	"github.com/2beens/bloglist/internal/telemetry/metrics"
	"github.com/2beens/bloglist/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type newUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type usersRepo interface {
	Add(ctx context.Context, user *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id int) (*User, error)
	All(ctx context.Context) ([]User, error)
}

var _ usersRepo = (*Repo)(nil)

type Handler struct {
	repo        usersRepo
	authService *auth.Service
	metrics     *metrics.Manager
}

func NewHandler(
	repo usersRepo,
	authService *auth.Service,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:        repo,
		authService: authService,
		metrics:     metricsManager,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	loginAllowedPerMin int,
) {
	mainRouter.HandleFunc("/users", handler.handleList).Methods("GET").Name("list-users")
	mainRouter.HandleFunc("/users", handler.handleCreate).Methods("POST", "OPTIONS").Name("new-user")
	mainRouter.HandleFunc("/logout", handler.handleLogout).Methods("POST", "OPTIONS").Name("logout")

	loginSubrouter := mainRouter.PathPrefix("/login").Subrouter()
	loginSubrouter.HandleFunc("", handler.handleLogin).Methods("POST", "OPTIONS").Name("login")

	// rate limit the /login endpoint to prevent abuse
	loginSubrouter.Use(middleware.RateLimit(rateLimiter, "login", loginAllowedPerMin, handler.metrics))
}

func (handler *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	allUsers, err := handler.repo.All(r.Context())
	if err != nil {
		log.Errorf("get all users: %s", err)
		pkg.WriteErrorResponse(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if allUsers == nil {
		allUsers = []User{}
	}

	usersJson, err := json.Marshal(allUsers)
	if err != nil {
		log.Errorf("marshal users: %s", err)
		pkg.WriteErrorResponse(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, usersJson)
}

func (handler *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	var newUserReq newUserRequest
	if err := json.NewDecoder(r.Body).Decode(&newUserReq); err != nil {
		log.Errorf("add user, unmarshal json params: %s", err)
		pkg.WriteErrorResponse(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if len(newUserReq.Username) < MinUsernameLength {
		pkg.WriteErrorResponse(
			w,
			fmt.Sprintf("username must be at least %d characters long", MinUsernameLength),
			http.StatusBadRequest,
		)
		return
	}
	if len(newUserReq.Password) < MinPasswordLength {
		pkg.WriteErrorResponse(
			w,
			fmt.Sprintf("password must be at least %d characters long", MinPasswordLength),
			http.StatusBadRequest,
		)
		return
	}

	passwordHash, err := pkg.HashPassword(newUserReq.Password)
	if err != nil {
		log.Errorf("add user, hash password: %s", err)
		pkg.WriteErrorResponse(w, "internal server error", http.StatusInternalServerError)
		return
	}

	user := &User{
		Username:     newUserReq.Username,
		Name:         newUserReq.Name,
		PasswordHash: passwordHash,
		Blogs:        []int{},
	}
	if err := handler.repo.Add(r.Context(), user); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			pkg.WriteErrorResponse(w, "username must be unique", http.StatusBadRequest)
			return
		}
		log.Errorf("add user: %s", err)
		pkg.WriteErrorResponse(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if handler.metrics != nil {
		handler.metrics.CounterUsersCreated.Inc()
	}

	userJson, err := json.Marshal(user)
	if err != nil {
		log.Errorf("marshal created user: %s", err)
		pkg.WriteErrorResponse(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, userJson, http.StatusCreated)
}

func (handler *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	var loginReq loginRequest
	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		log.Errorf("login, unmarshal json params: %s", err)
		pkg.WriteErrorResponse(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if loginReq.Username == "" || loginReq.Password == "" {
		pkg.WriteErrorResponse(w, "username or password empty", http.StatusBadRequest)
		return
	}

	user, err := handler.repo.GetByUsername(r.Context(), loginReq.Username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			log.Tracef("[username] failed login attempt for user: %s", loginReq.Username)
			pkg.WriteErrorResponse(w, "invalid username or password", http.StatusUnauthorized)
			return
		}
		log.Errorf("login, get user: %s", err)
		pkg.WriteErrorResponse(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if !pkg.CheckPasswordHash(loginReq.Password, user.PasswordHash) {
		log.Tracef("[password] failed login attempt for user: %s", loginReq.Username)
		pkg.WriteErrorResponse(w, "invalid username or password", http.StatusUnauthorized)
		return
	}

	token, err := handler.authService.Login(r.Context(), user.ID, time.Now())
	if err != nil {
		log.Errorf("login failed, generate token error: %s", err)
		pkg.WriteErrorResponse(w, "generate token error", http.StatusInternalServerError)
		return
	}

	if handler.metrics != nil {
		handler.metrics.CounterLogins.Inc()
	}

	log.Tracef("new login success for user: %s", user.Username)

	loginRespJson, err := json.Marshal(loginResponse{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
	})
	if err != nil {
		log.Errorf("marshal login response: %s", err)
		pkg.WriteErrorResponse(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, loginRespJson)
}

func (handler *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	token := bearerToken(r)
	if token == "" {
		pkg.WriteErrorResponse(w, "token missing or invalid", http.StatusUnauthorized)
		return
	}

	if err := handler.authService.Logout(r.Context(), token); err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			pkg.WriteErrorResponse(w, "token missing or invalid", http.StatusUnauthorized)
			return
		}
		log.Errorf("logout: %s", err)
		pkg.WriteErrorResponse(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "logged out")
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	if !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("bearer "):])
}
