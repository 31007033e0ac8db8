package otel

import (
	"context"
	"time"

	"github.com/hdprajwal/podcast-creator/pkg/provider"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/semconv/v1.38.0/genaiconv"
)

type Synthesizer interface {
	Observable
	provider.Synthesizer
}

type observableSynthesizer struct {
	model    string
	provider string

	synthesizer provider.Synthesizer

	audioSizeMetric         metric.Int64Histogram
	operationDurationMetric genaiconv.ClientOperationDuration
}

func NewSynthesizer(provider, model string, p provider.Synthesizer) Synthesizer {
	meter := otel.Meter(instrumentationName)

	audioSizeMetric, _ := meter.Int64Histogram("podcast.synthesis.audio.size",
		metric.WithDescription("Bytes of audio returned by one speech synthesis call"),
		metric.WithUnit("By"),
	)

	operationDurationMetric, _ := genaiconv.NewClientOperationDuration(meter)

	return &observableSynthesizer{
		synthesizer: p,

		model:    model,
		provider: provider,

		audioSizeMetric:         audioSizeMetric,
		operationDurationMetric: operationDurationMetric,
	}
}

func (p *observableSynthesizer) otelSetup() {
}

func (p *observableSynthesizer) Synthesize(ctx context.Context, input string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "synthesize "+p.model)
	defer span.End()

	timestamp := time.Now()

	result, err := p.synthesizer.Synthesize(ctx, input, options)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	duration := time.Since(timestamp).Seconds()

	p.operationDurationMetric.Record(ctx, duration,
		genaiconv.OperationNameGenerateContent,
		genaiconv.ProviderNameAttr(p.provider),
		KeyValues([]KeyValue{
			p.operationDurationMetric.AttrRequestModel(p.model),
		}, EndUserAttrs(ctx))...,
	)

	var size int64

	for _, c := range result.Chunks {
		size += int64(len(c.Data))
	}

	span.SetAttributes(
		String("gen_ai.request.model", p.model),
		String("gen_ai.provider.name", p.provider),
	)

	p.audioSizeMetric.Record(ctx, size, metric.WithAttributes(
		KeyValues([]KeyValue{
			String("gen_ai.request.model", p.model),
			String("gen_ai.provider.name", p.provider),
		}, EndUserAttrs(ctx))...,
	))

	return result, nil
}
