// Mints a gateway JWT for local testing:
//
//	go run ./cmd/token -email dev@martpe.in -name Dev
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/martpe-org/martpeApp-sub003/utils"
)

func main() {
	_ = godotenv.Load()

	email := flag.String("email", "dev@martpe.in", "email claim")
	name := flag.String("name", "Dev", "name claim")
	userID := flag.String("user", "", "user id claim (random when empty)")
	flag.Parse()

	id := uuid.New()
	if *userID != "" {
		parsed, err := uuid.Parse(*userID)
		if err != nil {
			log.Fatalf("invalid -user: %v", err)
		}
		id = parsed
	}

	token, err := utils.GenerateJWT(id, *email, *name)
	if err != nil {
		log.Fatalf("failed to generate token: %v", err)
	}
	fmt.Println(token)
}
