package router

import "go.uber.org/fx"

// Module provides the gin engine with all routes and middleware attached.
var Module = fx.Provide(Setup)
