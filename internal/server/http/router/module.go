package router

import "go.uber.org/fx"

// Module registers HTTP router construction for fx runtime. It expects a
// handlers.AtelierFacade and a middleware.Limiter in the graph.
var Module = fx.Provide(Setup)
