package main

import (
	"log"

	"github.com/se401/advisor/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
