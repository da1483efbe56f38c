package logging

import (
	"time"
)

// TimingContext holds timing information for manual Start/End tracking
type TimingContext struct {
	name      string
	startTime time.Time
}

// Time executes the given function and logs its execution time.
//
// Example:
//
//	logging.Time("load config", func() {
//	    cfg, err = config.Load(path)
//	})
func Time(name string, fn func()) {
	if !IsEnabled() {
		fn()
		return
	}

	start := time.Now()
	fn()
	logDuration(Get(), name, time.Since(start))
}

// Start begins a timing measurement for manual control.
// Must be paired with End() or EndWithError() to log the duration.
func Start(name string) TimingContext {
	return TimingContext{
		name:      name,
		startTime: time.Now(),
	}
}

// Elapsed returns the time since Start was called
func (t TimingContext) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// End completes a timing measurement started with Start() and logs the duration.
func End(ctx TimingContext, args ...any) {
	if !IsEnabled() {
		return
	}
	logDuration(Get(), ctx.name, ctx.Elapsed(), args...)
}

// EndWithError logs the duration at error level when err is non-nil and at
// debug level otherwise.
//
// Example:
//
//	timing := logging.Start("enhance prompt")
//	text, err := client.Enhance(ctx, prompt)
//	logging.EndWithError(timing, err, "provider", client.Name())
func EndWithError(ctx TimingContext, err error, args ...any) {
	if !IsEnabled() {
		return
	}
	if err == nil {
		logDuration(Get(), ctx.name, ctx.Elapsed(), args...)
		return
	}
	duration := ctx.Elapsed()
	args = append(args,
		"duration", duration.String(),
		"ms", duration.Milliseconds(),
		"error", err,
	)
	Get().Error(ctx.name+" failed", args...)
}

func logDuration(l *Logger, name string, duration time.Duration, args ...any) {
	args = append(args,
		"duration", duration.String(),
		"ms", duration.Milliseconds(),
	)
	l.Debug(name, args...)
}
