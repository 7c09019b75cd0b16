package main

import "jobpulse/cmd"

// @title jobpulse API
// @version 1.0
// @description Read-only analytics API over the data_jobs postings table.
// @BasePath /
func main() {
	cmd.Execute()
}
