package perftests

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync/atomic"
	"testing"
	"time"

	hiring "gigflow/internal/hiringService"
	model "gigflow/internal/models"
	repository "gigflow/internal/repository"
)

// LoadScenario defines configurable benchmark parameters
type LoadScenario struct {
	Name      string
	NumUsers  int
	NumGigs   int
	ReadRatio int
	HireRatio int
	Burst     bool // if true, no delay between ops
}

// OperationMetrics collects latencies safely
type OperationMetrics struct {
	latencies atomic.Value // stores []time.Duration
}

func (om *OperationMetrics) Record(d time.Duration) {
	v := om.latencies.Load()
	var l []time.Duration
	if v != nil {
		l = v.([]time.Duration)
	}
	l = append(l, d)
	om.latencies.Store(l)
}

func (om *OperationMetrics) Stats() (min, max, avg, p95, p99 time.Duration) {
	v := om.latencies.Load()
	if v == nil {
		return
	}
	latencies := v.([]time.Duration)
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	min = latencies[0]
	max = latencies[len(latencies)-1]

	var total time.Duration
	for _, d := range latencies {
		total += d
	}
	avg = total / time.Duration(len(latencies))
	p95 = latencies[int(0.95*float64(len(latencies)))]
	p99 = latencies[int(0.99*float64(len(latencies)))]
	return
}

// setupMarket creates repository and hiring service with open gigs
func setupMarket(numGigs int) (*repository.MemoryRepo, *hiring.HiringService) {
	repo := repository.NewMemoryRepo()
	svc := hiring.NewHiringService(repo)
	for i := 0; i < numGigs; i++ {
		seedGig(repo, i)
	}
	return repo, svc
}

// Benchmark_Load_HiringSystem runs multiple scenarios
func Benchmark_Load_HiringSystem(b *testing.B) {
	scenarios := []LoadScenario{
		{"Low-Contention-BidHeavy", 200, 200, 0, 0, false},
		{"High-Contention-BidHeavy", 500, 10, 0, 0, false},
		{"Mixed-Workload", 300, 50, 5, 2, false},
		{"ReadHeavy", 200, 50, 8, 1, false},
		{"Edge-Case-SingleGig", 100, 1, 3, 2, false},
		{"Peak-Burst", 500, 50, 2, 2, true},
	}

	for _, s := range scenarios {
		b.Run(s.Name, func(b *testing.B) {
			runParallelScenario(b, s)
		})
	}
}

func runParallelScenario(b *testing.B, s LoadScenario) {
	b.ReportAllocs()

	ctx := context.Background()
	_, svc := setupMarket(s.NumGigs)

	var totalOps, successfulBids, failedBids, successfulHires, failedHires, totalReads int64
	gigHires := make([]int64, s.NumGigs)
	metrics := &OperationMetrics{}

	start := time.Now()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano() + int64(time.Now().Nanosecond())))

		for pb.Next() {
			gigIndex := rnd.Intn(s.NumGigs)
			gigID := fmt.Sprintf("gig_%d", gigIndex)
			owner := model.User{
				UserID:   fmt.Sprintf("owner_%d", gigIndex),
				Username: fmt.Sprintf("Owner %d", gigIndex),
			}
			opType := rnd.Intn(10)

			opStart := time.Now()
			switch {
			case opType < s.ReadRatio:
				if _, err := svc.ListGigs(ctx, "", ""); err != nil {
					b.Logf("ignored read error: %v", err)
				}
				atomic.AddInt64(&totalReads, 1)

			case opType < s.ReadRatio+s.HireRatio:
				if hireRandomBid(ctx, svc, gigID, owner) {
					atomic.AddInt64(&successfulHires, 1)
					atomic.AddInt64(&gigHires[gigIndex], 1)
				} else {
					atomic.AddInt64(&failedHires, 1)
				}

			default:
				freelancer := model.User{
					UserID:   fmt.Sprintf("user_%d", rnd.Intn(s.NumUsers)),
					Username: "load bidder",
				}
				price := float64(50 + rnd.Intn(100))
				if _, err := svc.SubmitBid(ctx, gigID, freelancer, "load test bid", price); err != nil {
					atomic.AddInt64(&failedBids, 1)
				} else {
					atomic.AddInt64(&successfulBids, 1)
				}
			}

			metrics.Record(time.Since(opStart))
			atomic.AddInt64(&totalOps, 1)

			if !s.Burst {
				time.Sleep(time.Millisecond)
			}
		}
	})

	elapsed := time.Since(start)
	throughput := float64(totalOps) / elapsed.Seconds()
	min, max, avg, p95, p99 := metrics.Stats()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	b.Logf(
		"Scenario: %s | Gigs: %d | Total Ops: %d | Success Bids: %d | Failed Bids: %d | Success Hires: %d | Failed Hires: %d | Reads: %d | Elapsed: %s | Throughput: %.2f ops/sec | Latency(us) min: %.2f avg: %.2f max: %.2f p95: %.2f p99: %.2f | Memory Alloc: %.2f MB",
		s.Name, s.NumGigs, totalOps, successfulBids, failedBids, successfulHires, failedHires, totalReads, elapsed,
		throughput,
		float64(min.Microseconds()), float64(avg.Microseconds()), float64(max.Microseconds()),
		float64(p95.Microseconds()), float64(p99.Microseconds()),
		float64(mem.Alloc)/1024/1024,
	)

	// each gig can only ever be hired once
	for i, v := range gigHires {
		if v > 1 {
			b.Fatalf("gig %d hired %d times", i, v)
		}
	}
}

// hireRandomBid picks one of the gig's pending bids and attempts the hire.
// Losing the race to another hire, or finding no pending bid, counts as a
// failed attempt.
func hireRandomBid(ctx context.Context, svc *hiring.HiringService, gigID string, owner model.User) bool {
	bids, err := svc.BidsForGig(ctx, gigID, owner.UserID)
	if err != nil {
		return false
	}
	for _, bid := range bids {
		if bid.Status != model.BidPending {
			continue
		}
		if _, err := svc.Hire(ctx, bid.BidID, owner); err == nil {
			return true
		}
	}
	return false
}
