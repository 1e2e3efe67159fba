package services

import (
	"log"
	"time"

	"github.com/google/uuid"
)

// GradebooksRefresherService periodically refreshes every tracked student's
// gradebook from the Synergy API.
type GradebooksRefresherService struct {
	gradebookService *GradebookService
}

// NewGradebooksRefresherService constructs a new refresher with dependencies.
func NewGradebooksRefresherService(gradebookService *GradebookService) *GradebooksRefresherService {
	return &GradebooksRefresherService{
		gradebookService: gradebookService,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (gr *GradebooksRefresherService) StartPeriodicJob(interval time.Duration) {
	go gr.startPeriodicJob(interval)
}

func (gr *GradebooksRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[GradebooksRefresherService] Running periodic gradebooks refresher job.")
		if err := gr.RefreshGradebooks(); err != nil {
			log.Printf("[GradebooksRefresherService] RefreshGradebooks returned error: %v", err)
		} else {
			log.Println("[GradebooksRefresherService] RefreshGradebooks completed successfully.")
		}
	}
}

// RefreshGradebooks fetches, derives and caches the gradebook of every
// student on the configured roster. A failing student is logged and skipped
// so one bad record cannot starve the rest of the roster.
func (gr *GradebooksRefresherService) RefreshGradebooks() error {
	runID := uuid.NewString()

	ids, err := gr.gradebookService.GetAllStudentIds()
	if err != nil {
		log.Printf("[GradebooksRefresherService] run=%s failed to load student roster: %v", runID, err)
		return err
	}

	log.Printf("[GradebooksRefresherService] run=%s refreshing %d students", runID, len(ids))

	var refreshed int
	for _, studentID := range ids {
		view, err := gr.gradebookService.RefreshStudent(studentID)
		if err != nil {
			log.Printf("[GradebooksRefresherService] run=%s failed to refresh student %s: %v", runID, studentID, err)
			continue
		}
		refreshed++
		if view.Selected != nil {
			log.Printf("[GradebooksRefresherService] run=%s student %s: period average %s, %d assignments",
				runID, studentID, view.Selected.Average, len(view.Selected.Assignments))
		}
	}

	log.Printf("[GradebooksRefresherService] run=%s refreshed %d/%d students", runID, refreshed, len(ids))
	return nil
}
