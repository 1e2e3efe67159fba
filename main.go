package main

import (
	"fmt"
	"time"

	"gradebook-server/config"
	"gradebook-server/di"
)

func main() {
	container := di.NewContainer("prod")

	fmt.Println("refreshing gradebooks!")
	if err := container.GradebooksRefresherService.RefreshGradebooks(); err != nil {
		fmt.Println("initial refresh failed:", err)
	}

	fmt.Println("starting periodic job!")
	container.GradebooksRefresherService.StartPeriodicJob(config.GRADEBOOKS_REFRESHER_SCHEDULE_MINUTES * time.Minute)

	fmt.Println("starting server!")
	container.GradebookHttpServer.Start()
}
