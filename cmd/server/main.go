package main

import (
	"github.com/nivaro/account_service/config"
	"github.com/nivaro/account_service/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
