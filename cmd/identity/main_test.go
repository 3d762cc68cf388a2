package main

import (
	"testing"

	"identity/internal/infra/pubsub"

	"go.uber.org/fx"
)

func TestDependencyGraph(t *testing.T) {
	err := fx.ValidateApp(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		pubsub.Module,
		fx.Invoke(startServer),
	)
	if err != nil {
		t.Fatalf("invalid dependency graph: %v", err)
	}
}
