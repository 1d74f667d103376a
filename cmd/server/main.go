package main

import "affiliatehub/internal/app"

// @title           Affiliate dashboard API
// @version         1.0
// @description     Account-manager dashboard: stats, activity, leads and KVK lookup.
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	app.Run()
}
