package blog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/bloglist/internal/auth"
	"github.com/2beens/bloglist/internal/config"
	"github.com/2beens/bloglist/internal/telemetry/metrics"
	"github.com/2beens/bloglist/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type newBlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  *int   `json:"likes"`
}

type updateBlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  *int   `json:"likes"`
}

type blogRepo interface {
	AddBlog(ctx context.Context, blog *Blog) error
	UpdateBlog(ctx context.Context, id int, fields UpdateFields) (*Blog, error)
	DeleteBlog(ctx context.Context, id int) (bool, error)
	All(ctx context.Context) ([]Blog, error)
	GetBlog(ctx context.Context, id int) (*Blog, error)
}

type Handler struct {
	repo     blogRepo
	analyzer *Analyzer
	// updateDeletePolicy decides who may update/delete posts, see config
	updateDeletePolicy string
	metrics            *metrics.Manager
}

func NewHandler(
	repo blogRepo,
	updateDeletePolicy string,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:               repo,
		analyzer:           NewAnalyzer(repo),
		updateDeletePolicy: updateDeletePolicy,
		metrics:            metricsManager,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/blogs", handler.handleList).Methods("GET").Name("list-blogs")
	router.HandleFunc("/blogs/stats", handler.handleStats).Methods("GET").Name("blogs-stats")
	router.HandleFunc("/blogs", handler.handleCreate).Methods("POST", "OPTIONS").Name("new-blog")
	router.HandleFunc("/blogs/{id}", handler.handleUpdate).Methods("PUT", "OPTIONS").Name("update-blog")
	router.HandleFunc("/blogs/{id}", handler.handleDelete).Methods("DELETE", "OPTIONS").Name("delete-blog")
}

func (handler *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	allBlogs, err := handler.repo.All(r.Context())
	if err != nil {
		log.Errorf("get all blogs error: %s", err)
		http.Error(w, "get all blogs error", http.StatusInternalServerError)
		return
	}

	if allBlogs == nil {
		allBlogs = []Blog{}
	}

	allBlogsJson, err := json.Marshal(allBlogs)
	if err != nil {
		log.Errorf("marshal all blogs error: %s", err)
		http.Error(w, "marshal all blogs error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, allBlogsJson)
}

func (handler *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	summary, err := handler.analyzer.Summary(r.Context())
	if err != nil {
		log.Errorf("get blogs stats error: %s", err)
		http.Error(w, "get blogs stats error", http.StatusInternalServerError)
		return
	}

	summaryJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("marshal blogs stats error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, summaryJson)
}

func (handler *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	userID, loggedIn := auth.UserIDFromContext(r.Context())
	if !loggedIn {
		pkg.WriteErrorResponse(w, "token missing or invalid", http.StatusUnauthorized)
		return
	}

	var newBlogReq newBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&newBlogReq); err != nil {
		log.Errorf("new blog, unmarshal json params: %s", err)
		pkg.WriteErrorResponse(w, "add blog failed", http.StatusBadRequest)
		return
	}

	if newBlogReq.Title == "" || newBlogReq.URL == "" {
		pkg.WriteErrorResponse(w, "title or url missing", http.StatusBadRequest)
		return
	}

	// missing likes is coerced to 0, a stored blog always carries the counter
	likes := 0
	if newBlogReq.Likes != nil {
		likes = *newBlogReq.Likes
	}
	if likes < 0 {
		pkg.WriteErrorResponse(w, "likes must not be negative", http.StatusBadRequest)
		return
	}

	newBlog := &Blog{
		Title:  newBlogReq.Title,
		Author: newBlogReq.Author,
		URL:    newBlogReq.URL,
		Likes:  likes,
		Owner:  &Owner{ID: userID},
	}

	if err := handler.repo.AddBlog(r.Context(), newBlog); err != nil {
		log.Errorf("add new blog failed: %s", err)
		http.Error(w, "add new blog failed", http.StatusInternalServerError)
		return
	}

	// re-read to get the owner expanded in the response
	createdBlog, err := handler.repo.GetBlog(r.Context(), newBlog.ID)
	if err != nil {
		log.Errorf("get created blog %d: %s", newBlog.ID, err)
		http.Error(w, "add new blog failed", http.StatusInternalServerError)
		return
	}

	if handler.metrics != nil {
		handler.metrics.CounterBlogsCreated.Inc()
	}

	log.Tracef("new blog %d: [%s] added", createdBlog.ID, createdBlog.Title)

	createdBlogJson, err := json.Marshal(createdBlog)
	if err != nil {
		log.Errorf("marshal created blog error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, createdBlogJson, http.StatusCreated)
}

func (handler *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "PUT, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	id, ok := blogIDFromRequest(w, r)
	if !ok {
		return
	}

	if handler.updateDeletePolicy == config.AuthPolicyOwnerOnly {
		if proceed := handler.checkOwnership(w, r, id); !proceed {
			return
		}
	}

	var updateBlogReq updateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&updateBlogReq); err != nil {
		log.Errorf("update blog, unmarshal json params: %s", err)
		pkg.WriteErrorResponse(w, "update blog failed", http.StatusBadRequest)
		return
	}

	likes := 0
	if updateBlogReq.Likes != nil {
		likes = *updateBlogReq.Likes
	}

	updatedBlog, err := handler.repo.UpdateBlog(r.Context(), id, UpdateFields{
		Title:  updateBlogReq.Title,
		Author: updateBlogReq.Author,
		URL:    updateBlogReq.URL,
		Likes:  likes,
	})
	switch {
	case errors.Is(err, ErrBlogNotFound):
		pkg.WriteErrorResponse(w, "blog not found", http.StatusNotFound)
		return
	case errors.Is(err, ErrBlogTitleOrURLEmpty):
		pkg.WriteErrorResponse(w, "title or url missing", http.StatusBadRequest)
		return
	case errors.Is(err, ErrNegativeLikes):
		pkg.WriteErrorResponse(w, "likes must not be negative", http.StatusBadRequest)
		return
	case err != nil:
		log.Errorf("update blog %d failed: %s", id, err)
		http.Error(w, "update blog failed", http.StatusInternalServerError)
		return
	}

	updatedBlogJson, err := json.Marshal(updatedBlog)
	if err != nil {
		log.Errorf("marshal updated blog error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, updatedBlogJson)
}

func (handler *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "DELETE, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	id, ok := blogIDFromRequest(w, r)
	if !ok {
		return
	}

	if handler.updateDeletePolicy == config.AuthPolicyOwnerOnly {
		userID, loggedIn := auth.UserIDFromContext(r.Context())
		if !loggedIn {
			pkg.WriteErrorResponse(w, "token missing or invalid", http.StatusUnauthorized)
			return
		}

		blog, err := handler.repo.GetBlog(r.Context(), id)
		if errors.Is(err, ErrBlogNotFound) {
			// nothing to delete, still a success
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if err != nil {
			log.Errorf("delete blog %d, ownership check: %s", id, err)
			http.Error(w, "delete blog failed", http.StatusInternalServerError)
			return
		}
		if blog.Owner.ID != userID {
			pkg.WriteErrorResponse(w, "not the blog owner", http.StatusForbidden)
			return
		}
	}

	deleted, err := handler.repo.DeleteBlog(r.Context(), id)
	if err != nil {
		log.Errorf("delete blog %d: %s", id, err)
		http.Error(w, "delete blog failed", http.StatusInternalServerError)
		return
	}

	if deleted {
		if handler.metrics != nil {
			handler.metrics.CounterBlogsDeleted.Inc()
		}
		log.Tracef("blog %d deleted", id)
	}

	w.WriteHeader(http.StatusNoContent)
}

// checkOwnership reports whether the request may proceed under the
// owner-only policy. It writes the failure response itself.
func (handler *Handler) checkOwnership(w http.ResponseWriter, r *http.Request, id int) bool {
	userID, loggedIn := auth.UserIDFromContext(r.Context())
	if !loggedIn {
		pkg.WriteErrorResponse(w, "token missing or invalid", http.StatusUnauthorized)
		return false
	}

	blog, err := handler.repo.GetBlog(r.Context(), id)
	if errors.Is(err, ErrBlogNotFound) {
		pkg.WriteErrorResponse(w, "blog not found", http.StatusNotFound)
		return false
	}
	if err != nil {
		log.Errorf("blog %d ownership check: %s", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return false
	}
	if blog.Owner.ID != userID {
		pkg.WriteErrorResponse(w, "not the blog owner", http.StatusForbidden)
		return false
	}

	return true
}

func blogIDFromRequest(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := mux.Vars(r)["id"]
	if idStr == "" {
		pkg.WriteErrorResponse(w, "blog id missing", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		pkg.WriteErrorResponse(w, "malformed blog id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
