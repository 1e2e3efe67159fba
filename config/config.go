package config

import (
	"os"
	"path/filepath"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Gradebook refresher config
const GRADEBOOKS_REFRESHER_SCHEDULE_MINUTES = 30

// Synergy API config
const SYNERGY_ENDPOINT_BASE_V1 = "https://synergy.district.example/api/v1"
const SYNERGY_API_KEY = ""

// Cached gradebooks expire after a day so a stalled refresher cannot serve
// stale grades forever.
const GRADEBOOK_CACHE_TTL_HOURS = 24

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const GRADEBOOK_RESPONSE_RESOURCE = "gradebook_response.json"
const STUDENT_IDS_RESOURCE = "static_student_ids.json"

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
