package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/linesmerrill/dmv-records-api/api"
	"github.com/linesmerrill/dmv-records-api/config"
	"github.com/linesmerrill/dmv-records-api/databases"
	"github.com/linesmerrill/dmv-records-api/models"
)

// Quick utility to sign a development bearer token, optionally registering
// the user first.
// Usage: go run scripts/mint_token.go -user 12
//
//	go run scripts/mint_token.go -seed jane -roles 111,222 -admin
func main() {
	userID := flag.Int64("user", 0, "id of an existing user")
	seed := flag.String("seed", "", "register a user with this username and sign a token for it")
	roles := flag.String("roles", "", "comma separated role ids for the seeded user")
	admin := flag.Bool("admin", false, "give the seeded user the admin flag")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	conf := config.New()
	if conf.JWTSecret == "" {
		fmt.Println("JWT_SECRET is not set")
		os.Exit(1)
	}

	if *seed != "" {
		id, err := seedUser(conf, *seed, *roles, *admin)
		if err != nil {
			fmt.Printf("Error seeding user: %v\n", err)
			os.Exit(1)
		}
		*userID = id
	}
	if *userID <= 0 {
		fmt.Println("Usage: go run scripts/mint_token.go -user <id> | -seed <username> [-roles a,b] [-admin]")
		os.Exit(1)
	}

	token, err := api.SignToken([]byte(conf.JWTSecret), *userID, *ttl)
	if err != nil {
		fmt.Printf("Error signing token: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("User ID: %d\n", *userID)
	fmt.Printf("Token: %s\n", token)
	fmt.Printf("\ncurl -H \"Authorization: Bearer %s\" http://localhost:%s/api/me\n", token, conf.Port)
}

func seedUser(conf *config.Config, username, roles string, admin bool) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := databases.NewClient(conf)
	if err != nil {
		return 0, err
	}
	defer client.Close()
	if err := client.Connect(ctx); err != nil {
		return 0, err
	}

	u := &models.User{
		DiscordID: "dev-" + username,
		Username:  username,
		IsAdmin:   admin,
		Roles:     models.Roles{},
		CreatedAt: time.Now().UTC(),
	}
	for _, id := range strings.Split(roles, ",") {
		if id = strings.TrimSpace(id); id != "" {
			u.Roles = append(u.Roles, models.Role{ID: id})
		}
	}
	return databases.NewUserDatabase(client).InsertOne(ctx, u)
}
