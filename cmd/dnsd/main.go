// Command dnsd is a small always-on authoritative-ish demo server: it
// loads configuration from the environment, binds a UDP socket, and
// answers queries from a static, in-memory record set. It is not a
// resolver or a cache — there is no upstream, nothing expires, and it
// never recurses.
package main

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/haukened/dnswire/internal/dns/common/log"
	"github.com/haukened/dnswire/internal/dns/config"
	"github.com/haukened/dnswire/internal/dns/server"
)

//go:embed records.txt
var defaultRecords string

const version = "0.1.0-dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	if err := log.Configure(cfg.Env, cfg.Log.Level); err != nil {
		fmt.Fprintf(os.Stderr, "logging configuration error: %v\n", err)
		os.Exit(1)
	}

	rs, err := loadRecords(strings.NewReader(defaultRecords))
	if err != nil {
		log.Fatal("failed to load records", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.IP, cfg.Server.Port)
	bound, err := server.New().Threads(cfg.Server.Threads).Bind(addr)
	if err != nil {
		log.Fatal("failed to bind", map[string]any{"error": err.Error(), "addr": addr})
		os.Exit(1)
	}
	defer bound.Close()

	log.Info("dnsd listening", map[string]any{
		"version": version,
		"addr":    bound.Addr().String(),
		"threads": cfg.Server.Threads,
	})

	if err := bound.Serve(staticService{rs: rs}); err != nil {
		log.Fatal("server stopped", map[string]any{"error": err.Error()})
	}
}
