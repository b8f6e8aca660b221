// Command promote-admin grants admin rights to an existing user. The first
// admin has to be promoted out of band; after that admins can be managed
// through the API.
package main

import (
	"flag"
	"log"

	"github.com/forumhub-dev/forumhub/internal/config"
	"github.com/forumhub-dev/forumhub/internal/storage/pg"
)

func main() {
	var configFolder, login string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.StringVar(&login, "login", "", "login of the user to promote")
	flag.Parse()

	if login == "" {
		log.Fatal("-login is required")
	}

	cfg := config.MustLoad(configFolder)
	db, err := pg.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	result, err := db.Exec("UPDATE users SET admin = TRUE WHERE login = $1", login)
	if err != nil {
		log.Fatal(err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		log.Fatalf("no user with login %q", login)
	}
	log.Printf("user %q promoted to admin", login)
}
