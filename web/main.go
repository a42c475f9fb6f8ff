package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-fragment-raytracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	webServer := server.NewServer(*port)

	log.Printf("Fragment Raytracer Web Server")
	log.Printf("Try http://localhost:%d/api/image?width=800&height=450 or /api/fragment?direction=0.5,0,2", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
