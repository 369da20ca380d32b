package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"

	"harimu/internal/adapter/export"
	httpadapter "harimu/internal/adapter/http"
	metricsinmem "harimu/internal/adapter/metrics/inmemory"
	llmplanner "harimu/internal/adapter/planner/llm"
	staticplanner "harimu/internal/adapter/planner/static"
	gormrepo "harimu/internal/adapter/repo/gorm"
	"harimu/internal/adapter/repo/memory"
	"harimu/internal/app/observe"
	"harimu/internal/app/ports"
	"harimu/internal/app/replay"
	"harimu/internal/app/run"
	"harimu/internal/app/status"
	"harimu/internal/app/walletops"
	"harimu/internal/config"
	"harimu/internal/domain/sim"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	cfgPath := os.Getenv("HARIMU_CONFIG")
	if cfgPath == "" {
		cfgPath = "harimu.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	deps, walletUC := mustBuildRepos()
	kpiRecorder := metricsinmem.NewRecorder()
	deps.Metrics = kpiRecorder
	deps.Planner = buildPlanner(cfg)
	hub := export.NewHub()
	deps.Publisher = buildPublisher(cfg, hub)

	runner := run.NewRunner(deps)
	if err := runner.Seed(context.Background(), agentSeeds(cfg)); err != nil {
		log.Fatalf("seed world: %v", err)
	}

	h := httpadapter.Handler{
		Runner:    runner,
		ObserveUC: observe.UseCase{World: runner},
		StatusUC:  status.UseCase{Runner: runner, RunState: deps.RunState},
		ReplayUC:  replay.UseCase{Events: deps.Events},
		WalletUC:  walletUC,
		KPI:       kpiRecorder,
	}

	s := server.Default(server.WithHostPorts(cfg.ServerAddr))
	h.RegisterRoutes(s)

	if cfg.ViewerAddr != "" {
		go func() {
			log.Printf("viewer websocket on %s", cfg.ViewerAddr)
			if err := http.ListenAndServe(cfg.ViewerAddr, hub); err != nil {
				log.Printf("viewer listener: %v", err)
			}
		}()
	}

	go func() {
		if err := runner.Run(context.Background(), cfg.TickRate(), cfg.MaxTicks); err != nil {
			log.Printf("tick loop stopped: %v", err)
		}
	}()

	log.Printf("harimu server listening on %s (planner: %s)", cfg.ServerAddr, cfg.Planner)
	s.Spin()
}

func mustBuildRepos() (run.Deps, walletops.UseCase) {
	dsn := strings.TrimSpace(os.Getenv("HARIMU_DB_DSN"))
	if dsn == "" {
		log.Println("HARIMU_DB_DSN not set, using in-memory repositories")
		store := memory.NewStore()
		deps := run.Deps{
			TxManager:  memory.NewTxManager(),
			OreNodes:   memory.NewOreNodeRepo(store),
			Structures: memory.NewStructureRepo(store),
			Events:     memory.NewEventRepo(store),
			Snapshots:  memory.NewSnapshotRepo(store),
			RunState:   memory.NewRunStateRepo(store),
		}
		return deps, walletops.UseCase{
			TxManager: memory.NewTxManager(),
			Wallets:   memory.NewWalletRepo(store),
			OreNodes:  deps.OreNodes,
			RunState:  deps.RunState,
		}
	}

	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := gormrepo.AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	deps := run.Deps{
		TxManager:  gormrepo.NewTxManager(db),
		OreNodes:   gormrepo.NewOreNodeRepo(db),
		Structures: gormrepo.NewStructureRepo(db),
		Events:     gormrepo.NewEventRepo(db),
		Snapshots:  gormrepo.NewSnapshotRepo(db),
		RunState:   gormrepo.NewRunStateRepo(db),
	}
	return deps, walletops.UseCase{
		TxManager: gormrepo.NewTxManager(db),
		Wallets:   gormrepo.NewWalletRepo(db),
		OreNodes:  deps.OreNodes,
		RunState:  deps.RunState,
	}
}

func buildPlanner(cfg config.Config) ports.Planner {
	if cfg.Planner == "llm" {
		client := llmplanner.NewClient(cfg.LLM.Provider, cfg.LLM.Host, cfg.LLM.Model, cfg.LLM.APIKey, cfg.LLMTimeout())
		return llmplanner.NewPlanner(client)
	}
	return staticplanner.Planner{}
}

func buildPublisher(cfg config.Config, hub *export.Hub) ports.TickPublisher {
	publishers := export.Fanout{hub}
	if cfg.ArchiveDir != "" {
		archive, err := export.NewArchive(cfg.ArchiveDir)
		if err != nil {
			log.Fatalf("open archive: %v", err)
		}
		publishers = append(publishers, archive)
	}
	return publishers
}

func agentSeeds(cfg config.Config) []run.AgentSeed {
	seeds := make([]run.AgentSeed, 0, len(cfg.Agents))
	for _, a := range cfg.Agents {
		seeds = append(seeds, run.AgentSeed{
			Name:     a.Name,
			Qi:       a.Qi,
			Position: sim.Position{X: a.X, Y: a.Y, Z: a.Z},
			MaxAge:   a.MaxAge,
		})
	}
	return seeds
}
