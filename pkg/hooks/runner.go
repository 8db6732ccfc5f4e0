package hooks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"prflow/pkg/config"
	"prflow/pkg/logger"
)

// NewRunnerParams contains parameters for creating a new hook runner.
type NewRunnerParams struct {
	Hooks    map[string]config.HookCommands
	Defaults config.HookDefaults
	Dir      string
	Logger   logger.Logger
	Spawner  CommandRunner
	Disabled bool
}

type realRunner struct {
	hooks    map[string]config.HookCommands
	defaults config.HookDefaults
	dir      string
	logger   logger.Logger
	spawner  CommandRunner
	disabled bool

	mu      sync.Mutex
	context map[string]interface{}
}

// NewRunner creates a hook runner backed by the given configuration.
func NewRunner(params NewRunnerParams) Runner {
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}
	spawner := params.Spawner
	if spawner == nil {
		spawner = NewCommandRunner()
	}
	defaults := params.Defaults
	if defaults.Timeout <= 0 {
		defaults.Timeout = config.Duration(config.DefaultHookTimeout)
	}
	if defaults.MaxTimeout <= 0 {
		defaults.MaxTimeout = config.Duration(config.DefaultHookMaxTimeout)
	}
	return &realRunner{
		hooks:    params.Hooks,
		defaults: defaults,
		dir:      params.Dir,
		logger:   log,
		spawner:  spawner,
		disabled: params.Disabled,
		context:  make(map[string]interface{}),
	}
}

// RunHook runs every command configured for a hook point, in order.
func (r *realRunner) RunHook(name string) error {
	if r.disabled {
		return nil
	}

	if !config.IsValidHookName(name) {
		return fmt.Errorf("%w: %s", ErrUnknownHook, name)
	}

	commands := r.hooks[name]
	if len(commands) == 0 {
		// Fast path: nothing configured, nothing spawned.
		return nil
	}

	env := r.buildEnv(name)

	for _, cmd := range commands {
		if err := r.runCommand(name, cmd, env); err != nil {
			return err
		}
	}

	return nil
}

// UpdateContext merges fields into the shared hook context.
func (r *realRunner) UpdateContext(partial map[string]interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, value := range partial {
		r.context[key] = value
	}
}

// RunCleanup runs the cleanup hook with the failure recorded in the context.
func (r *realRunner) RunCleanup(err error) {
	if r.disabled {
		return
	}

	if err != nil {
		r.UpdateContext(map[string]interface{}{"error": err.Error()})
	}

	if cleanupErr := r.RunHook(config.HookCleanup); cleanupErr != nil {
		r.logger.Warnf("cleanup hook failed: %v", cleanupErr)
	}
}

// HasConfiguredHooks reports whether any hook point has commands.
func (r *realRunner) HasConfiguredHooks() bool {
	if r.disabled {
		return false
	}
	for _, commands := range r.hooks {
		if len(commands) > 0 {
			return true
		}
	}
	return false
}

// ConfiguredHooks lists the hook points with commands, in workflow order.
func (r *realRunner) ConfiguredHooks() []string {
	if r.disabled {
		return nil
	}
	var names []string
	for _, name := range config.ValidHookNames() {
		if len(r.hooks[name]) > 0 {
			names = append(names, name)
		}
	}
	return names
}

func (r *realRunner) runCommand(name string, cmd config.HookCommand, env []string) error {
	timeout := r.commandTimeout(cmd)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	start := time.Now()
	output, err := r.spawner.Run(ctx, cmd.Command, r.dir, env)
	elapsed := time.Since(start)

	if cmd.ShowOutput && output != "" {
		r.logger.Logf("%s", strings.TrimRight(output, "\n"))
	}

	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("%w: hook %s command %q after %s",
				ErrHookTimeout, name, cmd.Command, timeout)
		}
		return fmt.Errorf("%w: hook %s command %q: %v (output: %s)",
			ErrHookFailed, name, cmd.Command, err, strings.TrimSpace(output))
	}

	r.logger.Logf("hook %s: %q completed in %s", name, cmd.Command, elapsed.Round(time.Millisecond))
	return nil
}

// commandTimeout resolves the timeout for one command: its own if
// requested, else the default, clamped to the maximum.
func (r *realRunner) commandTimeout(cmd config.HookCommand) time.Duration {
	timeout := cmd.Timeout.AsDuration()
	if timeout <= 0 {
		timeout = r.defaults.Timeout.AsDuration()
	}
	if max := r.defaults.MaxTimeout.AsDuration(); timeout > max {
		timeout = max
	}
	return timeout
}

// buildEnv snapshots the hook context into the command environment as
// PRFLOW_* variables on top of the current process environment.
func (r *realRunner) buildEnv(name string) []string {
	r.mu.Lock()
	keys := make([]string, 0, len(r.context))
	for key := range r.context {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	env := os.Environ()
	env = append(env, "PRFLOW_HOOK="+name)
	for _, key := range keys {
		env = append(env, "PRFLOW_"+envKey(key)+"="+envValue(r.context[key]))
	}
	r.mu.Unlock()

	return env
}

// envKey converts a camelCase context key to UPPER_SNAKE form.
func envKey(key string) string {
	var b strings.Builder
	for i, r := range key {
		if r >= 'A' && r <= 'Z' && i > 0 {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}

func envValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case nil:
		return ""
	}
	if encoded, err := json.Marshal(value); err == nil {
		return string(encoded)
	}
	return fmt.Sprintf("%v", value)
}
