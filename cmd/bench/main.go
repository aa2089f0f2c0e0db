// Command bench runs a synthetic workload against the cache, driving
// many goroutines through a caller-owned mutex (the cache itself
// performs no locking), and exposes a Prometheus metrics endpoint
// plus an optional pprof endpoint.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/akashihi/stlcache/cache"
	pmet "github.com/akashihi/stlcache/metrics/prom"
	"github.com/akashihi/stlcache/policy"
	"github.com/akashihi/stlcache/policy/arc"
	"github.com/akashihi/stlcache/policy/lfu"
	"github.com/akashihi/stlcache/policy/lfuaging"
	"github.com/akashihi/stlcache/policy/lfuagingstar"
	"github.com/akashihi/stlcache/policy/lfustar"
	"github.com/akashihi/stlcache/policy/lru"
	"github.com/akashihi/stlcache/policy/mru"
	"github.com/akashihi/stlcache/policy/none"
)

func main() {
	var (
		capacity = flag.Int("cap", 10_000, "cache capacity (entries)")
		pol      = flag.String("policy", "lru", "eviction policy: none|lru|mru|lfu|lfustar|lfuaging|lfuagingstar|arc")
		age      = flag.Duration("age", time.Second, "aging window for lfuaging/lfuagingstar")

		workers  = flag.Int("workers", 2*runtime.GOMAXPROCS(0), "number of worker goroutines")
		duration = flag.Duration("duration", 10*time.Second, "benchmark duration")
		readPct  = flag.Int("reads", 80, "read percentage [0..100]")

		keys    = flag.Int("keys", 1_000_000, "keyspace size")
		zipfS   = flag.Float64("zipf_s", 1.1, "Zipf s > 1 (skew)")
		zipfV   = flag.Float64("zipf_v", 1.0, "Zipf v")
		seed    = flag.Int64("seed", time.Now().UnixNano(), "random seed")
		preload = flag.Int("preload", 0, "preload entries (0 = cap/2)")

		pprofAddr   = flag.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
		metricsAddr = flag.String("http", ":8080", "serve Prometheus metrics at addr")
	)
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof: serving at %s", *pprofAddr)
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	metrics := pmet.New(nil, "stlcache", "bench", nil)
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Printf("metrics: serving at %s", *metricsAddr)
		log.Println(http.ListenAndServe(*metricsAddr, nil))
	}()

	p, err := buildPolicy(*pol, *capacity, *age)
	if err != nil {
		log.Fatal(err)
	}
	c := cache.New[string, string](cache.Options[string, string]{
		MaxSize: *capacity,
		Policy:  p,
		Metrics: metrics,
	})

	// Cache performs no internal locking; every access below goes
	// through this mutex.
	var mu sync.Mutex

	pl := *preload
	if pl == 0 {
		pl = *capacity / 2
	}
	for i := 0; i < pl; i++ {
		k := "k:" + strconv.Itoa(i)
		_ = c.Insert(k, "v"+strconv.Itoa(i))
	}

	readPctVal := *readPct
	keysMax := uint64(*keys - 1)
	seedBase := *seed
	zipfSVal := *zipfS
	zipfVVal := *zipfV
	workersN := *workers
	if workersN <= 0 {
		workersN = 1
	}

	var reads, writes, hits, misses, total uint64
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	start := time.Now()
	var g errgroup.Group
	for w := 0; w < workersN; w++ {
		id := w
		g.Go(func() error {
			localR := rand.New(rand.NewSource(seedBase + int64(id)*9973))
			localZipf := rand.NewZipf(localR, zipfSVal, zipfVVal, keysMax)

			keyByZipf := func() string {
				return "k:" + strconv.FormatUint(localZipf.Uint64(), 10)
			}

			for {
				select {
				case <-ctx.Done():
					return nil
				default:
				}

				atomic.AddUint64(&total, 1)
				if int(localR.Int31n(100)) < readPctVal {
					atomic.AddUint64(&reads, 1)
					mu.Lock()
					_, err := c.Fetch(keyByZipf())
					mu.Unlock()
					if err == nil {
						atomic.AddUint64(&hits, 1)
					} else {
						atomic.AddUint64(&misses, 1)
					}
				} else {
					atomic.AddUint64(&writes, 1)
					k := keyByZipf()
					mu.Lock()
					_ = c.Erase(k)
					_ = c.Insert(k, "v"+strconv.Itoa(localR.Int()))
					mu.Unlock()
				}
			}
		})
	}
	_ = g.Wait()
	elapsed := time.Since(start)

	ops := atomic.LoadUint64(&total)
	readsN := atomic.LoadUint64(&reads)
	writesN := atomic.LoadUint64(&writes)
	hitsN := atomic.LoadUint64(&hits)
	missesN := atomic.LoadUint64(&misses)

	hitRate := 0.0
	if readsN > 0 {
		hitRate = float64(hitsN) / float64(readsN) * 100
	}

	mu.Lock()
	size := c.Size()
	mu.Unlock()

	fmt.Printf("policy=%s cap=%d workers=%d keys=%d dur=%v seed=%d\n",
		*pol, *capacity, workersN, *keys, elapsed, seedBase)
	fmt.Printf("ops=%d (%.0f ops/s)  reads=%d  writes=%d\n",
		ops, float64(ops)/elapsed.Seconds(), readsN, writesN)
	fmt.Printf("hits=%d  misses=%d  hit-rate=%.2f%%\n", hitsN, missesN, hitRate)
	fmt.Printf("Size()=%d\n", size)
}

func buildPolicy(name string, capacity int, age time.Duration) (policy.Policy[string], error) {
	switch name {
	case "none":
		return none.New[string](), nil
	case "lru":
		return lru.New[string](), nil
	case "mru":
		return mru.New[string](), nil
	case "lfu":
		return lfu.New[string](nil), nil
	case "lfustar":
		return lfustar.New[string](nil), nil
	case "lfuaging":
		return lfuaging.New[string](age, nil, nil), nil
	case "lfuagingstar":
		return lfuagingstar.New[string](age, nil, nil), nil
	case "arc":
		return arc.New[string](capacity), nil
	default:
		return nil, fmt.Errorf("unknown policy %q", name)
	}
}
