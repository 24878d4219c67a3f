package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plus3/kinet/tween"
)

const (
	spriteCount = 1000
	kindCount   = 4
)

// Attribute kind selectors for the stress sprites.
const (
	kindPosition = iota + 1
	kindScale
	kindRotation
	kindAll
)

const spriteTag tween.TypeTag = 1

// sprite is the animated stress target.
type sprite struct {
	x, y  float64
	scale float64
	rot   float64
}

type spriteAccessor struct{}

func (spriteAccessor) GetValues(target any, kind int, out []float64) int {
	s := target.(*sprite)
	switch kind {
	case kindPosition:
		out[0], out[1] = s.x, s.y
		return 2
	case kindScale:
		out[0] = s.scale
		return 1
	case kindRotation:
		out[0] = s.rot
		return 1
	case kindAll:
		out[0], out[1], out[2], out[3] = s.x, s.y, s.scale, s.rot
		return 4
	}
	return 0
}

func (spriteAccessor) SetValues(target any, kind int, in []float64) {
	s := target.(*sprite)
	switch kind {
	case kindPosition:
		s.x, s.y = in[0], in[1]
	case kindScale:
		s.scale = in[0]
	case kindRotation:
		s.rot = in[0]
	case kindAll:
		s.x, s.y, s.scale, s.rot = in[0], in[1], in[2], in[3]
	}
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	tweenCount := flag.Int("tweens", 10000, "The number of concurrent tweens to keep alive.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting tween stress test...")

	// 1. Setup registry, pool and manager
	registry := tween.NewRegistry()
	registry.Register(spriteTag, spriteAccessor{})
	pool := tween.NewPool()
	manager := tween.NewManager()

	sprites := make([]*sprite, spriteCount)
	for i := range sprites {
		sprites[i] = &sprite{scale: 1}
	}

	// 2. Populate the manager
	log.Printf("Spawning %d tweens across %d sprites...\n", *tweenCount, spriteCount)
	for i := 0; i < *tweenCount; i++ {
		spawnRandomTween(manager, pool, registry, sprites)
	}
	log.Println("Population complete.")

	// 3. Run the soak loop
	report := &Report{
		Duration:       *duration,
		Tweens:         *tweenCount,
		Sprites:        spriteCount,
		Kinds:          kindCount,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates, completions int64
	lastFrameTime := time.Now()
	var carry time.Duration

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			// The engine consumes whole milliseconds; carry the
			// sub-millisecond remainder into the next frame.
			carry += time.Since(lastFrameTime)
			lastFrameTime = time.Now()
			step := int(carry / time.Millisecond)
			carry -= time.Duration(step) * time.Millisecond

			updateStart := time.Now()
			manager.Update(step)
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++

			// Finished tweens were reaped into the pool; keep the
			// population level.
			if missing := *tweenCount - manager.Len(); missing > 0 {
				for i := 0; i < missing; i++ {
					spawnRandomTween(manager, pool, registry, sprites)
				}
				completions += int64(missing)
			}
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.Completions = completions
	report.PoolSize = pool.Size()
	report.PoolIdle = pool.Idle()
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	// 4. Generate report to console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

// spawnRandomTween acquires a pooled tween with a random kind, schedule and
// destination and hands it to the manager.
func spawnRandomTween(m *tween.Manager, pool *tween.Pool, reg *tween.Registry, sprites []*sprite) {
	s := sprites[rand.Intn(len(sprites))]
	duration := 100 + rand.Intn(900)

	var tw *tween.Tween
	switch rand.Intn(kindCount) {
	case 0:
		tw = pool.To(reg, s, spriteTag, kindPosition, duration).
			Target(rand.Float64()*800, rand.Float64()*600)
	case 1:
		tw = pool.To(reg, s, spriteTag, kindScale, duration).
			Target(0.5 + rand.Float64())
	case 2:
		tw = pool.To(reg, s, spriteTag, kindRotation, duration).
			Target(rand.Float64() * 360)
	default:
		tw = pool.From(reg, s, spriteTag, kindAll, duration).
			Target(rand.Float64()*800, rand.Float64()*600, 1, 0)
	}

	switch rand.Intn(8) {
	case 0:
		tw.Repeat(rand.Intn(3), 50)
	case 1:
		tw.RepeatYoyo(rand.Intn(3)+1, 0)
	}

	m.Add(tw)
}
