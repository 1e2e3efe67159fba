package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// GradebookHandler is the handler surface the router wires routes to.
type GradebookHandler interface {
	GetGradebook(w http.ResponseWriter, r *http.Request)
	GetCourseChart(w http.ResponseWriter, r *http.Request)
	RebuildGradebook(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	gradebookHandler GradebookHandler
	router           *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	gradebookHandler GradebookHandler,
	router *mux.Router) *Router {
	return &Router{
		gradebookHandler: gradebookHandler,
		router:           router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?period={periodIndex(int)} optionally
	r.router.HandleFunc("/v1/gradebook/{studentId}", r.gradebookHandler.GetGradebook).Methods("GET")

	r.router.HandleFunc("/v1/gradebook/{studentId}/chart/{courseIndex}", r.gradebookHandler.GetCourseChart).Methods("GET")

	r.router.HandleFunc("/v1/gradebook/{studentId}/rebuild", r.gradebookHandler.RebuildGradebook).Methods("POST")

	r.router.HandleFunc("/ping", r.gradebookHandler.Ping).Methods("GET")
}
