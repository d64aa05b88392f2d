// tokengen mints a signed token for manual testing of the streaming
// endpoints, standing in for the external login collaborator.
//
//	TOKEN_SECRET=secret go run ./cmd/tokengen --username alice --duration 1h
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"chat-relay/auth"
)

func main() {
	username := flag.String("username", "", "identity to embed in the token")
	duration := flag.Duration("duration", time.Hour, "token validity duration")
	flag.Parse()

	if *username == "" {
		log.Fatal("--username is required")
	}
	secret := os.Getenv("TOKEN_SECRET")
	if secret == "" {
		log.Fatal("TOKEN_SECRET must be set")
	}

	verifier := auth.NewVerifier([]byte(secret), *duration)
	token, err := verifier.Issue(*username)
	if err != nil {
		log.Fatalf("Failed to issue token: %v", err)
	}
	fmt.Println(token)
}
