package main

import (
	"context"
	"flag"
	"log"

	"github.com/vbncursed/vkr/board-service/internal/config"
	"github.com/vbncursed/vkr/board-service/internal/crypto"
	"github.com/vbncursed/vkr/board-service/internal/logger"
	"github.com/vbncursed/vkr/board-service/internal/models"
	"github.com/vbncursed/vkr/board-service/internal/repo"
	bsvc "github.com/vbncursed/vkr/board-service/internal/service"
)

func main() {
	var ident, pass, role string
	flag.StringVar(&ident, "ident", "", "staff login")
	flag.StringVar(&pass, "pass", "", "staff password")
	flag.StringVar(&role, "role", string(models.RoleAdministrator), "janitor|moderator|developer|administrator")
	flag.Parse()
	if ident == "" || pass == "" {
		log.Fatal("-ident and -pass are required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	store, closeStore, err := repo.Open(ctx, cfg, logger.New(logger.WithEnvironment(cfg.Env, "seed-admin")))
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer closeStore()

	signer, err := crypto.NewSigner([]byte(cfg.Secret))
	if err != nil {
		log.Fatalf("signer: %v", err)
	}
	clock := bsvc.RealClock{}
	gate := bsvc.NewRoleGate(signer, clock, models.DefaultRing)
	svc := bsvc.New(store, store, signer, gate, clock)

	if err := svc.CreateUser(ctx, bsvc.NewUserCommand{Ident: ident, Pass: pass, Role: models.Role(role)}); err != nil {
		log.Fatalf("create user: %v", err)
	}
	log.Printf("seeded %s with role %s", ident, role)
}
