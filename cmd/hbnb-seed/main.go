// Command hbnb-seed loads a YAML fixture file into a running hbnb API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	api := flag.String("api", "http://localhost:5000/api/v1", "Base URL of the hbnb API")
	path := flag.String("file", "fixtures.yml", "YAML fixtures to load")
	flag.Parse()

	f, err := loadFixtures(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read %s: %v\n", *path, err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rep := Seed(ctx, NewClient(*api), f)
	for _, err := range rep.Failures {
		fmt.Fprintf(os.Stderr, "Failed: %v\n", err)
	}
	fmt.Printf("Added %d state(s), %d city(ies), %d amenity(ies), %d user(s), %d place(s), %d amenity link(s)\n",
		rep.States, rep.Cities, rep.Amenities, rep.Users, rep.Places, rep.Links)
	if len(rep.Failures) > 0 {
		os.Exit(2)
	}
}
