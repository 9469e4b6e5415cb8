package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/hooklist/hooks"
)

func main() {
	profilePath := flag.String("profile", "hooks-stress.yaml", "Optional YAML profile; flags override its values.")
	duration := flag.Duration("duration", 0, "The total duration the test should run for.")
	scopes := flag.Int("scopes", 0, "The number of mounted scopes.")
	hooksPerScope := flag.Int("hooks", 0, "The number of hooks each scope registers.")
	churn := flag.Float64("churn", -1, "Fraction of scopes remounted every frame.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	profile, err := LoadProfile(*profilePath)
	if err != nil {
		log.Fatalf("Failed to load profile: %v", err)
	}
	if *duration > 0 {
		profile.Duration = *duration
	}
	if *scopes > 0 {
		profile.Scopes = *scopes
	}
	if *hooksPerScope > 0 {
		profile.HooksPerScope = *hooksPerScope
	}
	if *churn >= 0 {
		profile.Churn = *churn
	}
	profile.GCPauseMetrics = profile.GCPauseMetrics || *gcPauseMetrics
	if err := profile.Validate(); err != nil {
		log.Fatalf("Invalid profile: %v", err)
	}

	log.Println("Starting hooks stress test...")
	report, err := Run(profile)
	if err != nil {
		log.Fatalf("Stress test failed: %v", err)
	}
	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// stressScope returns a render body registering n hooks of mixed types.
// The hook sequence is fixed when the body is built, so every render makes
// the same calls in the same order.
func stressScope(n int, report *Report) func(*hooks.Scope) {
	steps := make([]func(*hooks.Scope), n)
	for i := range steps {
		steps[i] = stressHook(i, report)
	}
	return func(s *hooks.Scope) {
		for _, step := range steps {
			step(s)
		}
	}
}

func stressHook(i int, report *Report) func(*hooks.Scope) {
	switch i % 4 {
	case 0:
		return func(s *hooks.Scope) {
			st := hooks.UseState(s, i)
			st.Set(st.Value() + 1)
		}
	case 1:
		return func(s *hooks.Scope) {
			hooks.UseRef(s, func() string { return "ref" })
		}
	case 2:
		return func(s *hooks.Scope) {
			hooks.UseMemo(s, func() float64 { return float64(i) * 1.5 }, i)
		}
	default:
		return func(s *hooks.Scope) {
			hooks.UseEffect(s, func() func() {
				report.EffectRuns++
				return func() { report.EffectCleanups++ }
			})
		}
	}
}

// Run mounts the scopes described by profile and renders them until the
// duration elapses.
func Run(profile Profile) (*Report, error) {
	report := &Report{
		Duration:       profile.Duration,
		Scopes:         profile.Scopes,
		HooksPerScope:  profile.HooksPerScope,
		Churn:          profile.Churn,
		GCPauseMetrics: profile.GCPauseMetrics,
	}

	rt := hooks.NewRuntime()
	body := stressScope(profile.HooksPerScope, report)

	log.Printf("Mounting %d scopes with %d hooks each...\n", profile.Scopes, profile.HooksPerScope)
	ids := make([]hooks.ScopeId, 0, profile.Scopes)
	for i := 0; i < profile.Scopes; i++ {
		ids = append(ids, rt.Mount(fmt.Sprintf("scope-%d", i), body).ID())
	}

	remountPerFrame := int(float64(profile.Scopes) * profile.Churn)
	if profile.Churn > 0 && remountPerFrame == 0 {
		remountPerFrame = 1
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", profile.Duration)
	ctx, cancel := context.WithTimeout(context.Background(), profile.Duration)
	defer cancel()

	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			if err := rt.Once(); err != nil {
				report.RenderErrors++
			}
			for i := 0; i < remountPerFrame; i++ {
				if err := rt.Unmount(ids[0]); err != nil {
					return nil, err
				}
				ids = append(ids[1:], rt.Mount("remounted", body).ID())
				report.Remounts++
			}
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			report.TotalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	report.Stats = rt.CollectStats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	if err := rt.Close(); err != nil {
		return nil, err
	}
	return report, nil
}
