package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"gradebook-server/dao/redis"
	services "gradebook-server/service"
	"gradebook-server/util"
)

const (
	STUDENT_ID_PATH_ARG   = "studentId"
	COURSE_INDEX_PATH_ARG = "courseIndex"
	PERIOD_QUERY_ARG      = "period"
)

type GradebookHandler struct {
	redisGradebookDao *redis.RedisGradebookDAO
	gradebookService  *services.GradebookService
}

func NewGradebookHandler(
	redisGradebookDao *redis.RedisGradebookDAO,
	gradebookService *services.GradebookService) *GradebookHandler {

	return &GradebookHandler{
		redisGradebookDao: redisGradebookDao,
		gradebookService:  gradebookService,
	}
}

// GetGradebook handles GET /v1/gradebook/{studentId}. An optional ?period=N
// re-aims the selected/gradebook aliases at another enriched period.
func (h *GradebookHandler) GetGradebook(w http.ResponseWriter, r *http.Request) {
	studentID := mux.Vars(r)[STUDENT_ID_PATH_ARG]

	view, err := h.redisGradebookDao.GetGradebookView(studentID)
	if err != nil {
		log.Println("Error loading gradebook view:", err)
		http.Error(w, "Gradebook not found", http.StatusNotFound)
		return
	}

	if p := r.URL.Query().Get(PERIOD_QUERY_ARG); p != "" {
		period, err := strconv.Atoi(p)
		if err != nil || period < 0 || period >= len(view.Periods) {
			http.Error(w, "Invalid argument "+PERIOD_QUERY_ARG, http.StatusBadRequest)
			return
		}
		view.SelectedPeriod = period
		view.Selected = view.Periods[period]
		view.Gradebook = view.Periods[period]
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(view); err != nil {
		log.Println("Error encoding response:", err)
	}
}

// GetCourseChart handles GET /v1/gradebook/{studentId}/chart/{courseIndex},
// streaming the course's grade trajectory as an HTML chart.
func (h *GradebookHandler) GetCourseChart(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	studentID := vars[STUDENT_ID_PATH_ARG]

	courseIndex, err := strconv.Atoi(vars[COURSE_INDEX_PATH_ARG])
	if err != nil || courseIndex < 0 {
		http.Error(w, "Invalid argument "+COURSE_INDEX_PATH_ARG, http.StatusBadRequest)
		return
	}

	view, err := h.redisGradebookDao.GetGradebookView(studentID)
	if err != nil {
		log.Println("Error loading gradebook view:", err)
		http.Error(w, "Gradebook not found", http.StatusNotFound)
		return
	}

	if view.Selected == nil || courseIndex >= len(view.Selected.Courses.Course) {
		http.Error(w, "Course not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.RenderCourseTrajectory(view.Selected.Courses.Course[courseIndex], w); err != nil {
		log.Println("Error rendering course chart:", err)
	}
}

// RebuildGradebook handles POST /v1/gradebook/{studentId}/rebuild,
// re-deriving the cached view from the cached raw record without a
// round trip to Synergy.
func (h *GradebookHandler) RebuildGradebook(w http.ResponseWriter, r *http.Request) {
	studentID := mux.Vars(r)[STUDENT_ID_PATH_ARG]

	view, err := h.gradebookService.RebuildStudent(studentID)
	if err != nil {
		log.Println("Error rebuilding gradebook view:", err)
		http.Error(w, "Gradebook not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(view); err != nil {
		log.Println("Error encoding response:", err)
	}
}

// Ping handles GET /ping
func (h *GradebookHandler) Ping(w http.ResponseWriter, r *http.Request) {
	log.Println("Pinging server")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}
