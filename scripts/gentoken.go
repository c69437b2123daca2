package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go-talented-backend/pkg/auth"
)

// Mints a development access token for exercising the API locally.
//
//	go run ./scripts -secret dev-secret -uid 1 -role applicant
func main() {
	secret := flag.String("secret", os.Getenv("JWT_SECRET"), "signing secret")
	uid := flag.Int64("uid", 1, "user id")
	role := flag.String("role", "applicant", "applicant or recruiter")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *secret == "" {
		fmt.Fprintln(os.Stderr, "a signing secret is required (-secret or JWT_SECRET)")
		os.Exit(1)
	}

	token, err := auth.GenerateToken(*secret, *uid, *role, *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
