// Command pulseauth-demo drives the session engine end to end against Redis:
// seed the demo directory, log in, update the profile, restore the session
// from a second engine sharing the same storage, and log out. Audit events
// stream to stdout as JSON; the metrics snapshot prints at the end.
//
// With no -redis-addr flag and no REDIS_ADDR environment variable, an
// embedded miniredis instance is used.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/greenpulse/pulseauth"
	"github.com/greenpulse/pulseauth/password"
	"github.com/greenpulse/pulseauth/storage"
)

func main() {
	var (
		redisAddr = flag.String("redis-addr", "", "redis address; if empty, REDIS_ADDR env or miniredis is used")
		namespace = flag.String("namespace", "greenpulse", "storage namespace for persisted entries")
		cycles    = flag.Int("cycles", 1, "number of login/restore/logout cycles")
		latency   = flag.Duration("latency", 150*time.Millisecond, "simulated backend round-trip latency")
	)
	flag.Parse()

	if *cycles <= 0 {
		fmt.Fprintln(os.Stderr, "cycles must be > 0")
		os.Exit(2)
	}

	ctx := context.Background()

	addr := *redisAddr
	if addr == "" {
		addr = os.Getenv("REDIS_ADDR")
	}

	var cleanup func()
	if addr == "" {
		mr, err := miniredis.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to start miniredis: %v\n", err)
			os.Exit(1)
		}
		addr = mr.Addr()
		cleanup = mr.Close
		fmt.Printf("using embedded miniredis at %s\n", addr)
	}
	if cleanup != nil {
		defer cleanup()
	}

	client := redis.NewUniversalClient(&redis.UniversalOptions{Addrs: []string{addr}})
	defer client.Close()

	kv := storage.NewRedisStore(client, "demo")
	cfg := demoConfig(*namespace, *latency)

	hasher, err := password.NewArgon2(password.Config{
		Memory:      cfg.Password.Memory,
		Time:        cfg.Password.Time,
		Parallelism: cfg.Password.Parallelism,
		SaltLength:  cfg.Password.SaltLength,
		KeyLength:   cfg.Password.KeyLength,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "hasher setup failed: %v\n", err)
		os.Exit(1)
	}

	dir, err := pulseauth.SeedDemoDirectory(hasher)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seeding demo directory failed: %v\n", err)
		os.Exit(1)
	}

	engine, err := pulseauth.New().
		WithConfig(cfg).
		WithStorage(kv).
		WithDirectory(dir).
		WithAuditSink(pulseauth.NewJSONWriterSink(os.Stdout)).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "build failed: %v\n", err)
		os.Exit(1)
	}
	defer engine.Close()

	for i := 0; i < *cycles; i++ {
		runCycle(ctx, engine, cfg, kv, dir, i)
	}

	printMetrics(engine.MetricsSnapshot())
	if dropped := engine.AuditDropped(); dropped > 0 {
		fmt.Printf("audit events dropped: %d\n", dropped)
	}
}

func demoConfig(namespace string, latency time.Duration) pulseauth.Config {
	cfg := pulseauth.Config{}
	cfg.Session.StorageNamespace = namespace
	cfg.Session.SimulatedLatency = latency
	cfg.Session.RestoreOnBuild = true
	cfg.Password.Memory = 64 * 1024
	cfg.Password.Time = 3
	cfg.Password.Parallelism = 2
	cfg.Password.SaltLength = 16
	cfg.Password.KeyLength = 32
	cfg.Signup.RegisterInDirectory = true
	cfg.Signup.DefaultTheme = pulseauth.ThemeSystem
	cfg.Audit.Enabled = true
	cfg.Audit.BufferSize = 256
	cfg.Audit.DropIfFull = true
	cfg.Metrics.Enabled = true
	cfg.Metrics.EnableLatencyHistograms = true
	return cfg
}

func runCycle(
	ctx context.Context,
	engine *pulseauth.Engine,
	cfg pulseauth.Config,
	kv storage.Store,
	dir pulseauth.Directory,
	i int,
) {
	ctx = pulseauth.WithClientLabel(ctx, fmt.Sprintf("demo-cycle-%d", i))

	if err := engine.Login(ctx, "farmer@test.com", pulseauth.DemoPassword, pulseauth.RoleFarmer); err != nil {
		fmt.Fprintf(os.Stderr, "login failed: %v\n", err)
		return
	}
	fmt.Printf("logged in as %s\n", engine.CurrentUser().FullName)

	area := 30.0
	if !engine.UpdateProfile(ctx, pulseauth.ProfileUpdate{FieldArea: &area}) {
		fmt.Fprintln(os.Stderr, "profile update rejected")
	}

	// A second engine against the same storage models another tab restoring
	// the persisted session.
	second, err := pulseauth.New().
		WithConfig(cfg).
		WithStorage(kv).
		WithDirectory(dir).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "second engine build failed: %v\n", err)
		return
	}
	defer second.Close()

	if second.IsAuthenticated() {
		fmt.Printf("second tab restored session for %s\n", second.CurrentUser().Email)
	}

	engine.Logout(ctx)
	fmt.Printf("cycle %d done, authenticated=%v\n", i, engine.IsAuthenticated())
}

func printMetrics(snap pulseauth.MetricsSnapshot) {
	ids := make([]int, 0, len(snap.Counters))
	for id := range snap.Counters {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)

	fmt.Println("metrics:")
	for _, id := range ids {
		fmt.Printf("  %2d: %d\n", id, snap.Counters[pulseauth.MetricID(id)])
	}
	for id, buckets := range snap.Histograms {
		fmt.Printf("  histogram %d: %v\n", id, buckets)
	}
}
