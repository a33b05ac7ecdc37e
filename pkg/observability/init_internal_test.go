package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

func sampled(s sdktrace.Sampler) bool {
	res := s.ShouldSample(sdktrace.SamplingParameters{
		ParentContext: context.Background(),
		TraceID:       trace.TraceID{0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 1},
		Name:          "probe",
	})

	return res.Decision == sdktrace.RecordAndSample
}

func envOf(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestSelectSampler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  map[string]string
		cfg  Config
		want bool
	}{
		{name: "default samples", want: true},
		{name: "always_on", env: map[string]string{envTracesSampler: "always_on"}, want: true},
		{name: "always_off", env: map[string]string{envTracesSampler: "always_off"}, want: false},
		{name: "case insensitive", env: map[string]string{envTracesSampler: " Always_Off "}, want: false},
		{
			name: "traceidratio one",
			env:  map[string]string{envTracesSampler: "traceidratio", envTracesSamplerArg: "1.0"},
			want: true,
		},
		{
			name: "traceidratio zero",
			env:  map[string]string{envTracesSampler: "traceidratio", envTracesSamplerArg: "0"},
			want: false,
		},
		{name: "parent based on", env: map[string]string{envTracesSampler: "parentbased_always_on"}, want: true},
		{name: "parent based off drops roots", env: map[string]string{envTracesSampler: "parentbased_always_off"}, want: false},
		{name: "unknown name falls back", env: map[string]string{envTracesSampler: "jaeger_remote"}, want: true},
		{
			name: "debug overrides env",
			env:  map[string]string{envTracesSampler: "always_off"},
			cfg:  Config{DebugTrace: true},
			want: true,
		},
		{name: "configured ratio", cfg: Config{SampleRatio: 1}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, sampled(selectSampler(tt.cfg, envOf(tt.env))))
		})
	}
}

func TestParseRatio(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.25, parseRatio("0.25"), 1e-9)
	assert.InDelta(t, 1.0, parseRatio(""), 1e-9)
	assert.InDelta(t, 1.0, parseRatio("half"), 1e-9)
	assert.InDelta(t, 1.0, parseRatio("7"), 1e-9)
	assert.InDelta(t, 0.0, parseRatio("-1"), 1e-9)
}

func TestBuildResource(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.ServiceVersion = "1.2.3"
	cfg.Mode = ModeLibrary

	res, err := buildResource(cfg)
	require.NoError(t, err)

	attrs := make(map[string]string)
	for _, kv := range res.Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}

	assert.Equal(t, "arkast", attrs["service.name"])
	assert.Equal(t, "1.2.3", attrs["service.version"])
	assert.Equal(t, "library", attrs["app.mode"])
	assert.NotContains(t, attrs, "deployment.environment")
}

func TestTeardown_RunsInReverseAndJoinsErrors(t *testing.T) {
	t.Parallel()

	var (
		order []string
		stack teardown
	)

	errFirst := errors.New("first")

	stack.add(func(context.Context) error {
		order = append(order, "first")

		return errFirst
	})
	stack.add(func(context.Context) error {
		order = append(order, "second")

		return nil
	})

	err := stack.shutdown(DefaultConfig().shutdownTimeout())(context.Background())

	require.ErrorIs(t, err, errFirst)
	assert.Equal(t, []string{"second", "first"}, order)
}
