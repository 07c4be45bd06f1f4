package main

import "strava-insights/cmd"

func main() {
	cmd.Execute()
}
