package services

import (
	"gradebook-server/api/synergy"
	"gradebook-server/config"
	"gradebook-server/dao/redis"
	"gradebook-server/grades"
	"gradebook-server/models"
	"gradebook-server/util"
)

var STUDENT_IDS_PATH = config.GetResourcePath(config.STUDENT_IDS_RESOURCE)

// GradebookService composes the cache DAO, the Synergy API and the grade
// derivation core.
type GradebookService struct {
	gradebookDao *redis.RedisGradebookDAO
	synergyApi   synergy.SynergyAPI
	builder      *grades.Builder
}

// NewGradebookService constructs a new GradebookService with its dependencies.
func NewGradebookService(
	gradebookDao *redis.RedisGradebookDAO,
	synergyApi synergy.SynergyAPI,
	builder *grades.Builder) *GradebookService {

	return &GradebookService{
		gradebookDao: gradebookDao,
		synergyApi:   synergyApi,
		builder:      builder,
	}
}

// GetGradebook returns the cached enriched gradebook for a student.
func (gs *GradebookService) GetGradebook(studentID string) (*models.GradebookView, error) {
	return gs.gradebookDao.GetGradebookView(studentID)
}

// RefreshStudent fetches the raw record, derives the enriched view and
// caches both.
func (gs *GradebookService) RefreshStudent(studentID string) (*models.GradebookView, error) {
	raw, err := gs.synergyApi.GetGradebook(studentID)
	if err != nil {
		return nil, err
	}
	if err := gs.gradebookDao.UpsertRawGradebook(studentID, raw); err != nil {
		return nil, err
	}

	view := gs.builder.Build(raw)
	if err := gs.gradebookDao.UpsertGradebookView(studentID, view); err != nil {
		return nil, err
	}
	return view, nil
}

// RebuildStudent re-derives the view from the cached raw record without
// touching the upstream API.
func (gs *GradebookService) RebuildStudent(studentID string) (*models.GradebookView, error) {
	raw, err := gs.gradebookDao.GetRawGradebook(studentID)
	if err != nil {
		return nil, err
	}
	view := gs.builder.Build(raw)
	if err := gs.gradebookDao.UpsertGradebookView(studentID, view); err != nil {
		return nil, err
	}
	return view, nil
}

// GetAllStudentIds returns the configured roster of students to track.
func (gs *GradebookService) GetAllStudentIds() ([]string, error) {
	return util.ReadStudentIds(STUDENT_IDS_PATH)
}
