package main

import (
	"os"

	"github.com/dmitrijs2005/aqikeeper/internal/app"
)

func main() {
	os.Exit(app.Main())
}
