package main

import (
	"os"

	"github.com/philipparndt/godxf/internal/app"
)

func main() {
	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	app.Run(path)
}
