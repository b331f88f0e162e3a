// Command token prints a bearer token signed with the API's key, for local development.
//
//	go run ./cmd/token -role admin -sub alice
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/vietanh2810/cafe-pulse-api/internal/config"
	"github.com/vietanh2810/cafe-pulse-api/internal/pkg/jwthelper"
)

func main() {
	configPath := flag.String("config", "./cmd/app/config.yml", "path to the API config file")
	role := flag.String("role", "user", "role claim: admin or user")
	subject := flag.String("sub", "dev", "subject claim")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime, 0 for none")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	token, err := jwthelper.Generate(conf.API.JWTSigningKey, *subject, *role, *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(token)
}
