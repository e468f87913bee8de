package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"supriplan/internal/config"
	"supriplan/internal/server"
)

var (
	port    = flag.Int("port", 0, "porta do serviço (sobrepõe config.toml)")
	devMode = flag.Bool("dev", false, "modo de desenvolvimento")
	dataDir = flag.String("dataDir", "", "diretório de dados (sobrepõe config.toml)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  Supriplan - Planejamento de Demanda")
	fmt.Println("==========================================")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("Falha ao carregar configuração, usando padrão: %v", err)
		cfg = config.DefaultConfig()
	}

	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	srv := server.NewServer(cfg)
	addr := fmt.Sprintf(":%d", cfg.Server.Port)

	go func() {
		fmt.Printf("Serviço ouvindo na porta %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("Falha ao iniciar o serviço: %v", err)
		}
	}()

	fmt.Println("\nPressione Ctrl+C para encerrar...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nEncerrando serviço...")
	if err := srv.Close(); err != nil {
		log.Printf("Falha ao encerrar armazenamento: %v", err)
	}
}
