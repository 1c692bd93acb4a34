package cli

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/dukapos/duka/internal/client/iocli"
	"github.com/dukapos/duka/internal/client/replication"
	"github.com/dukapos/duka/internal/client/runtime"
)

// syncWait bounds how long the sync command waits for every collection to
// settle before reporting whatever state it reached.
const syncWait = 60 * time.Second

// RunSync starts the runtime, triggers a full sync and waits until every
// collection reports synced or the deadline passes.
func RunSync(ctx context.Context, io iocli.IO, rt *runtime.Runtime) error {
	handle, err := rt.Initialize(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer func() { _ = rt.Teardown(context.Background()) }()

	if !handle.Replicating() {
		msg, rerr := handle.State().InitError(ctx)
		if rerr != nil || msg == "" {
			msg = "replication not running"
		}
		return fmt.Errorf("cannot sync: %s", msg)
	}

	io.Println("Syncing...")
	handle.TriggerResync()

	deadline := time.NewTimer(syncWait)
	defer deadline.Stop()
	tick := time.NewTicker(200 * time.Millisecond)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline.C:
			printHealth(io, handle.HealthAll())
			return fmt.Errorf("sync did not settle within %s", syncWait)
		case <-tick.C:
			health := handle.HealthAll()
			if allSettled(health) {
				printHealth(io, health)
				if anyFailed(health) {
					return fmt.Errorf("sync finished with errors")
				}
				io.Println("Sync complete.")
				return nil
			}
		}
	}
}

// allSettled reports whether no collection is still connecting or mid-cycle.
func allSettled(health map[string]replication.Health) bool {
	for _, h := range health {
		if h == replication.HealthInitializing || h == replication.HealthSyncing {
			return false
		}
	}
	return true
}

func anyFailed(health map[string]replication.Health) bool {
	for _, h := range health {
		if h == replication.HealthOffline || h == replication.HealthError {
			return true
		}
	}
	return false
}

func printHealth(io iocli.IO, health map[string]replication.Health) {
	names := make([]string, 0, len(health))
	for name := range health {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		io.Printf("  %-16s %s\n", name, health[name])
	}
}
