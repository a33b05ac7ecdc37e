package observability

import (
	"strconv"
	"strings"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Standard OTel sampler environment variables.
const (
	envTracesSampler    = "OTEL_TRACES_SAMPLER"
	envTracesSamplerArg = "OTEL_TRACES_SAMPLER_ARG"
)

// envSamplers maps OTEL_TRACES_SAMPLER values to samplers built from
// OTEL_TRACES_SAMPLER_ARG.
var envSamplers = map[string]func(arg string) sdktrace.Sampler{
	"always_on":  func(string) sdktrace.Sampler { return sdktrace.AlwaysSample() },
	"always_off": func(string) sdktrace.Sampler { return sdktrace.NeverSample() },
	"traceidratio": func(arg string) sdktrace.Sampler {
		return sdktrace.TraceIDRatioBased(parseRatio(arg))
	},
	"parentbased_always_on": func(string) sdktrace.Sampler {
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	},
	"parentbased_always_off": func(string) sdktrace.Sampler {
		return sdktrace.ParentBased(sdktrace.NeverSample())
	},
	"parentbased_traceidratio": func(arg string) sdktrace.Sampler {
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(parseRatio(arg)))
	},
}

// selectSampler picks, in order: always-on for DebugTrace, the sampler named
// by the environment, then the configured ratio. An unset ratio samples all.
func selectSampler(cfg Config, getenv func(string) string) sdktrace.Sampler {
	if cfg.DebugTrace {
		return sdktrace.AlwaysSample()
	}

	if build, ok := envSamplers[strings.ToLower(strings.TrimSpace(getenv(envTracesSampler)))]; ok {
		return build(getenv(envTracesSamplerArg))
	}

	ratio := cfg.SampleRatio
	if ratio <= 0 {
		ratio = 1
	}

	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
}

// parseRatio reads a sampler argument, clamped to [0, 1]. Unparsable input
// samples everything.
func parseRatio(s string) float64 {
	ratio, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 1
	}

	return min(max(ratio, 0), 1)
}
