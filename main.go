// @title TaskFlow API
// @version 1.0
// @description Workspaces, boards, lists and cards with cache-aside reads.
// @BasePath /
package main

import (
	"os"

	_ "taskflow/docs"
	"taskflow/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		os.Exit(1)
	}
}
