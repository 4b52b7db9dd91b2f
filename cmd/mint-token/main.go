package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/vbncursed/vkr/board-service/internal/config"
	"github.com/vbncursed/vkr/board-service/internal/crypto"
	"github.com/vbncursed/vkr/board-service/internal/models"
	bsvc "github.com/vbncursed/vkr/board-service/internal/service"
)

func main() {
	var role string
	var ttl time.Duration
	flag.StringVar(&role, "role", string(models.RoleJanitor), "janitor|moderator|developer|administrator")
	flag.DurationVar(&ttl, "ttl", bsvc.SessionTTL, "token lifetime")
	flag.Parse()

	cfg, err := config.Parse()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	signer, err := crypto.NewSigner([]byte(cfg.Secret))
	if err != nil {
		log.Fatalf("signer: %v", err)
	}

	r := models.Role(role)
	gate := bsvc.NewRoleGate(signer, bsvc.RealClock{}, models.DefaultRing)
	if !gate.Known(r) {
		log.Fatalf("unknown role %q, want one of %v", role, gate.Ring())
	}
	tok, err := signer.Create(models.Identity{Role: r, Expiration: time.Now().Add(ttl).UnixMilli()})
	if err != nil {
		log.Fatalf("sign: %v", err)
	}
	fmt.Println("Authorization: Bearer " + tok)
}
